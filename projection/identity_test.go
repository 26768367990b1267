package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityDegPassthrough(t *testing.T) {
	var id Identity
	e, n := id.ForwardDeg(10.5, 54.3)
	assert.Equal(t, 10.5, e)
	assert.Equal(t, 54.3, n)

	lon, lat := id.InverseDeg(e, n)
	assert.Equal(t, 10.5, lon)
	assert.Equal(t, 54.3, lat)
}

func TestIdentityRadRoundTrip(t *testing.T) {
	var id Identity
	e, n := id.ForwardRad(0.1832, 0.9478)
	lon, lat := id.InverseRad(e, n)
	assert.InDelta(t, 0.1832, lon, 1e-12)
	assert.InDelta(t, 0.9478, lat, 1e-12)
}
