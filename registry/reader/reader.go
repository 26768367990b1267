// Package reader loads an EPSG Geodetic Parameter Registry SQL dump into an
// in-memory column store. It understands exactly the subset of SQL emitted
// by the registry's MySQL dump: CREATE TABLE, INSERT INTO (with or without
// an explicit column list), BEGIN/START TRANSACTION, COMMIT, and
// DROP TABLE IF EXISTS. Any other statement is skipped without an error.
package reader

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FieldKind tags the payload carried by a Field.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldInt
	FieldDouble
)

// Field is one cell of a query result, read out of whichever column
// storage it came from.
type Field struct {
	Kind FieldKind
	Str  string
	Int  int64
	Dbl  float64
}

type columnKind int

const (
	kindStringLike columnKind = iota
	kindMaybeStringLike
	kindIntLike
	kindMaybeIntLike
	kindDouble
	kindMaybeDouble
)

// Column is a single table column stored as a dense, type-homogeneous
// slice. Nullable SQL columns use the Maybe* variants.
type Column struct {
	kind      columnKind
	strs      []string
	maybeStrs []*string
	ints      []int64
	maybeInts []*int64
	dbls      []float64
	maybeDbls []*float64
}

// Len reports how many rows have been appended to this column.
func (c *Column) Len() int {
	switch c.kind {
	case kindStringLike:
		return len(c.strs)
	case kindMaybeStringLike:
		return len(c.maybeStrs)
	case kindIntLike:
		return len(c.ints)
	case kindMaybeIntLike:
		return len(c.maybeInts)
	case kindDouble:
		return len(c.dbls)
	case kindMaybeDouble:
		return len(c.maybeDbls)
	}
	return 0
}

func (c *Column) field(index int) (Field, bool) {
	switch c.kind {
	case kindStringLike:
		if index < 0 || index >= len(c.strs) {
			return Field{}, false
		}
		return Field{Kind: FieldString, Str: c.strs[index]}, true
	case kindMaybeStringLike:
		if index < 0 || index >= len(c.maybeStrs) || c.maybeStrs[index] == nil {
			return Field{}, false
		}
		return Field{Kind: FieldString, Str: *c.maybeStrs[index]}, true
	case kindIntLike:
		if index < 0 || index >= len(c.ints) {
			return Field{}, false
		}
		return Field{Kind: FieldInt, Int: c.ints[index]}, true
	case kindMaybeIntLike:
		if index < 0 || index >= len(c.maybeInts) || c.maybeInts[index] == nil {
			return Field{}, false
		}
		return Field{Kind: FieldInt, Int: *c.maybeInts[index]}, true
	case kindDouble:
		if index < 0 || index >= len(c.dbls) {
			return Field{}, false
		}
		return Field{Kind: FieldDouble, Dbl: c.dbls[index]}, true
	case kindMaybeDouble:
		if index < 0 || index >= len(c.maybeDbls) || c.maybeDbls[index] == nil {
			return Field{}, false
		}
		return Field{Kind: FieldDouble, Dbl: *c.maybeDbls[index]}, true
	}
	return Field{}, false
}

func (c *Column) intAt(index int) (int64, bool) {
	switch c.kind {
	case kindIntLike:
		if index < 0 || index >= len(c.ints) {
			return 0, false
		}
		return c.ints[index], true
	case kindMaybeIntLike:
		if index < 0 || index >= len(c.maybeInts) || c.maybeInts[index] == nil {
			return 0, false
		}
		return *c.maybeInts[index], true
	}
	return 0, false
}

func (c *Column) push(v sqlValue) error {
	if v.null {
		switch c.kind {
		case kindMaybeStringLike:
			c.maybeStrs = append(c.maybeStrs, nil)
		case kindMaybeIntLike:
			c.maybeInts = append(c.maybeInts, nil)
		case kindMaybeDouble:
			c.maybeDbls = append(c.maybeDbls, nil)
		default:
			return errors.Errorf("cannot push NULL into non-nullable column")
		}
		return nil
	}
	switch c.kind {
	case kindStringLike:
		if !v.isString {
			return errors.Errorf("cannot push %v into string column", v)
		}
		c.strs = append(c.strs, v.str)
	case kindMaybeStringLike:
		if !v.isString {
			return errors.Errorf("cannot push %v into string column", v)
		}
		s := v.str
		c.maybeStrs = append(c.maybeStrs, &s)
	case kindIntLike:
		n, err := v.asInt()
		if err != nil {
			return err
		}
		c.ints = append(c.ints, n)
	case kindMaybeIntLike:
		n, err := v.asInt()
		if err != nil {
			return err
		}
		c.maybeInts = append(c.maybeInts, &n)
	case kindDouble:
		f, err := v.asFloat()
		if err != nil {
			return err
		}
		c.dbls = append(c.dbls, f)
	case kindMaybeDouble:
		f, err := v.asFloat()
		if err != nil {
			return err
		}
		c.maybeDbls = append(c.maybeDbls, &f)
	}
	return nil
}

// Table is a parsed CREATE TABLE plus the rows appended by subsequent
// INSERT statements.
type Table struct {
	columnOrder []string
	columns     map[string]*Column
}

// Rows reports the row count, taken from an arbitrary column (all columns
// of a table grow in lockstep).
func (t *Table) Rows() int {
	for _, name := range t.columnOrder {
		return t.columns[name].Len()
	}
	return 0
}

// GetRows returns one Field slice per row, with columns picked out in the
// order of cols. A requested column that does not exist is an error, same
// as the original reader; a NULL cell for a requested column is reported
// as a nil *Field in that row's slot.
func (t *Table) GetRows(cols []string) ([][]*Field, error) {
	columns := make([]*Column, len(cols))
	for i, name := range cols {
		col, ok := t.columns[name]
		if !ok {
			return nil, errors.Errorf("could not satisfy cols %v with %v", cols, t.columnOrder)
		}
		columns[i] = col
	}
	rows := t.Rows()
	out := make([][]*Field, rows)
	for r := 0; r < rows; r++ {
		row := make([]*Field, len(cols))
		for i, col := range columns {
			if f, ok := col.field(r); ok {
				fCopy := f
				row[i] = &fCopy
			}
		}
		out[r] = row
	}
	return out, nil
}

// GetRowWhereI64 returns the first row whose col column equals val,
// projected onto selectCols, or ok=false if no such row exists.
func (t *Table) GetRowWhereI64(col string, val int64, selectCols []string) ([]*Field, bool) {
	rows := t.GetRowsWhereI64(col, val, selectCols)
	if len(rows) == 0 {
		return nil, false
	}
	return rows[0], true
}

// GetRowsWhereI64 returns every row whose col column equals val, projected
// onto selectCols.
func (t *Table) GetRowsWhereI64(col string, val int64, selectCols []string) [][]*Field {
	pivot, ok := t.columns[col]
	if !ok {
		return nil
	}
	columns := make([]*Column, len(selectCols))
	for i, name := range selectCols {
		c, ok := t.columns[name]
		if !ok {
			return nil
		}
		columns[i] = c
	}

	var out [][]*Field
	for r := 0; r < t.Rows(); r++ {
		v, ok := pivot.intAt(r)
		if !ok || v != val {
			continue
		}
		row := make([]*Field, len(selectCols))
		for i, c := range columns {
			if f, ok := c.field(r); ok {
				fCopy := f
				row[i] = &fCopy
			}
		}
		out = append(out, row)
	}
	return out
}

// Database is the full set of tables parsed out of one SQL dump.
type Database struct {
	tables map[string]*Table
}

// Table looks up a table by name.
func (d *Database) Table(name string) (*Table, bool) {
	t, ok := d.tables[name]
	return t, ok
}

// Parse reads a full SQL dump and builds a Database from it.
func Parse(r io.Reader) (*Database, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading sql dump")
	}

	db := &Database{tables: make(map[string]*Table)}
	for _, stmt := range splitStatements(string(raw)) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := applyStatement(db, stmt); err != nil {
			return nil, errors.Wrapf(err, "statement %q", truncate(stmt, 80))
		}
	}
	return db, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func applyStatement(db *Database, stmt string) error {
	upper := strings.ToUpper(stmt)
	switch {
	case strings.HasPrefix(upper, "CREATE TABLE"):
		return applyCreateTable(db, stmt)
	case strings.HasPrefix(upper, "INSERT INTO"):
		return applyInsert(db, stmt)
	case strings.HasPrefix(upper, "DROP TABLE IF EXISTS"):
		name := strings.TrimSpace(stmt[len("DROP TABLE IF EXISTS"):])
		name = strings.Trim(name, "`\"")
		delete(db.tables, name)
		return nil
	case strings.HasPrefix(upper, "BEGIN"), strings.HasPrefix(upper, "START TRANSACTION"), strings.HasPrefix(upper, "COMMIT"), strings.HasPrefix(upper, "SET "), strings.HasPrefix(upper, "LOCK TABLES"), strings.HasPrefix(upper, "UNLOCK TABLES"):
		return nil
	default:
		return nil
	}
}

func applyCreateTable(db *Database, stmt string) error {
	open := strings.IndexByte(stmt, '(')
	if open < 0 {
		return errors.New("create table missing column list")
	}
	closeIdx := strings.LastIndexByte(stmt, ')')
	if closeIdx < open {
		return errors.New("create table missing closing paren")
	}

	header := stmt[len("CREATE TABLE"):open]
	name := strings.Trim(strings.TrimSpace(header), "`\"")

	defs := splitTopLevelCommaList(stmt[open+1 : closeIdx])
	order := make([]string, 0, len(defs))
	columns := make(map[string]*Column, len(defs))
	for _, def := range defs {
		def = strings.TrimSpace(def)
		upperDef := strings.ToUpper(def)
		if strings.HasPrefix(upperDef, "PRIMARY KEY") || strings.HasPrefix(upperDef, "KEY ") ||
			strings.HasPrefix(upperDef, "UNIQUE") || strings.HasPrefix(upperDef, "CONSTRAINT") ||
			strings.HasPrefix(upperDef, "FOREIGN KEY") || strings.HasPrefix(upperDef, "INDEX") {
			continue
		}
		colName, kind := parseColumnDef(def)
		if colName == "" {
			continue
		}
		order = append(order, colName)
		columns[colName] = &Column{kind: kind}
	}

	db.tables[name] = &Table{columnOrder: order, columns: columns}
	return nil
}

func parseColumnDef(def string) (string, columnKind) {
	fields := strings.Fields(def)
	if len(fields) < 2 {
		return "", 0
	}
	name := strings.Trim(fields[0], "`\"")
	typ := strings.ToUpper(fields[1])
	if idx := strings.IndexByte(typ, '('); idx >= 0 {
		typ = typ[:idx]
	}

	nullable := true
	upperDef := strings.ToUpper(def)
	if strings.Contains(upperDef, "NOT NULL") {
		nullable = false
	}

	var kind columnKind
	switch {
	case strings.Contains(typ, "DOUBLE"), strings.Contains(typ, "FLOAT"), strings.Contains(typ, "REAL"), strings.Contains(typ, "DECIMAL"), strings.Contains(typ, "NUMERIC"):
		if nullable {
			kind = kindMaybeDouble
		} else {
			kind = kindDouble
		}
	case strings.Contains(typ, "INT"):
		if nullable {
			kind = kindMaybeIntLike
		} else {
			kind = kindIntLike
		}
	default:
		if nullable {
			kind = kindMaybeStringLike
		} else {
			kind = kindStringLike
		}
	}
	return name, kind
}

func applyInsert(db *Database, stmt string) error {
	rest := strings.TrimSpace(stmt[len("INSERT INTO"):])

	nameEnd := 0
	for nameEnd < len(rest) && !isSpaceOrParen(rest[nameEnd]) {
		nameEnd++
	}
	name := strings.Trim(rest[:nameEnd], "`\"")
	rest = strings.TrimSpace(rest[nameEnd:])

	table, ok := db.tables[name]
	if !ok {
		return errors.Errorf("insert into unknown table %q", name)
	}

	var explicitCols []string
	if strings.HasPrefix(rest, "(") {
		closeIdx := matchParen(rest, 0)
		if closeIdx < 0 {
			return errors.New("unterminated column list")
		}
		for _, c := range splitTopLevelCommaList(rest[1:closeIdx]) {
			explicitCols = append(explicitCols, strings.Trim(strings.TrimSpace(c), "`\""))
		}
		rest = strings.TrimSpace(rest[closeIdx+1:])
	}

	upperRest := strings.ToUpper(rest)
	valuesIdx := strings.Index(upperRest, "VALUES")
	if valuesIdx < 0 {
		return errors.New("insert missing VALUES")
	}
	rest = strings.TrimSpace(rest[valuesIdx+len("VALUES"):])

	for len(rest) > 0 {
		if rest[0] != '(' {
			break
		}
		closeIdx := matchParen(rest, 0)
		if closeIdx < 0 {
			return errors.New("unterminated value tuple")
		}
		tuple := splitTopLevelCommaList(rest[1:closeIdx])
		if err := insertRow(table, explicitCols, tuple); err != nil {
			return err
		}
		rest = strings.TrimSpace(rest[closeIdx+1:])
		if strings.HasPrefix(rest, ",") {
			rest = strings.TrimSpace(rest[1:])
		}
	}
	return nil
}

func insertRow(table *Table, explicitCols []string, tuple []string) error {
	cols := explicitCols
	if len(cols) == 0 {
		cols = table.columnOrder
	}
	if len(cols) != len(tuple) {
		return errors.Errorf("column/value count mismatch: %d columns, %d values", len(cols), len(tuple))
	}

	values := make(map[string]sqlValue, len(cols))
	for i, name := range cols {
		values[name] = parseSQLValue(strings.TrimSpace(tuple[i]))
	}

	for _, name := range table.columnOrder {
		col, ok := table.columns[name]
		if !ok {
			continue
		}
		v, present := values[name]
		if !present {
			v = sqlValue{null: true}
		}
		if err := col.push(v); err != nil {
			return errors.Wrapf(err, "column %s", name)
		}
	}
	return nil
}

type sqlValue struct {
	null     bool
	isString bool
	str      string
	raw      string
}

func (v sqlValue) asInt() (int64, error) {
	n, err := strconv.ParseInt(v.raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing int %q", v.raw)
	}
	return n, nil
}

func (v sqlValue) asFloat() (float64, error) {
	f, err := strconv.ParseFloat(v.raw, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing float %q", v.raw)
	}
	return f, nil
}

func parseSQLValue(tok string) sqlValue {
	if strings.EqualFold(tok, "NULL") {
		return sqlValue{null: true}
	}
	if len(tok) >= 2 && tok[0] == '\'' && tok[len(tok)-1] == '\'' {
		inner := tok[1 : len(tok)-1]
		inner = strings.ReplaceAll(inner, "''", "'")
		inner = strings.ReplaceAll(inner, `\'`, "'")
		return sqlValue{isString: true, str: inner}
	}
	return sqlValue{raw: tok}
}

func isSpaceOrParen(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '('
}

// matchParen returns the index of the ')' matching the '(' at openIdx,
// honoring single-quoted strings (with '' as an escaped quote) so commas
// and parens inside string literals are not mistaken for structure.
func matchParen(s string, openIdx int) int {
	depth := 0
	inString := false
	for i := openIdx; i < len(s); i++ {
		c := s[i]
		switch {
		case inString:
			if c == '\'' {
				if i+1 < len(s) && s[i+1] == '\'' {
					i++
					continue
				}
				inString = false
			}
		case c == '\'':
			inString = true
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevelCommaList splits s on commas that are not nested inside
// parentheses or single-quoted strings.
func splitTopLevelCommaList(s string) []string {
	var parts []string
	depth := 0
	inString := false
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inString:
			if c == '\'' {
				if i+1 < len(s) && s[i+1] == '\'' {
					i++
					continue
				}
				inString = false
			}
		case c == '\'':
			inString = true
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// splitStatements splits a SQL dump into individual statements on
// top-level semicolons, stripping '--' line comments first.
func splitStatements(sql string) []string {
	var noComments strings.Builder
	for _, line := range strings.Split(sql, "\n") {
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}
		noComments.WriteString(line)
		noComments.WriteByte('\n')
	}
	cleaned := noComments.String()

	var stmts []string
	depth := 0
	inString := false
	start := 0
	for i := 0; i < len(cleaned); i++ {
		c := cleaned[i]
		switch {
		case inString:
			if c == '\'' {
				if i+1 < len(cleaned) && cleaned[i+1] == '\'' {
					i++
					continue
				}
				inString = false
			}
		case c == '\'':
			inString = true
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == ';' && depth == 0:
			stmts = append(stmts, cleaned[start:i])
			start = i + 1
		}
	}
	if strings.TrimSpace(cleaned[start:]) != "" {
		stmts = append(stmts, cleaned[start:])
	}
	return stmts
}
