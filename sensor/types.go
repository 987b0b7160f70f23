// Package sensor defines the shared tabular data model for synthetic
// gas-sensor datasets: the binary freshness Label, typed column
// specifications (FieldSpec), the ordered column layout (Schema), and the
// immutable Row produced by the generators.
//
// The Schema is the single source of truth for column order and rendering:
// integer columns are rendered as bare digits, concentration columns as
// fixed two-decimal floats, and the label column as its {0,1} sentinel.
//
// Errors:
//
//	ErrBadSchema - schema is structurally invalid (no fields, empty name,
//	               missing or duplicated label column).
//	ErrArity     - a Row's value count does not match the schema layout.
package sensor

import (
	"errors"
	"strconv"
)

// Sentinel errors for schema and row rendering operations.
var (
	// ErrBadSchema indicates a structurally invalid schema definition.
	ErrBadSchema = errors.New("sensor: invalid schema")

	// ErrArity indicates that a Row carries the wrong number of values
	// for the schema it is rendered against.
	ErrArity = errors.New("sensor: row width does not match schema")
)

// Label is the binary ground-truth freshness class of a generated row.
type Label int

// Label sentinels. The numeric values are part of the output file contract.
const (
	// LabelBad marks a spoiled sample (Output column = 0).
	LabelBad Label = 0

	// LabelFresh marks a fresh sample (Output column = 1).
	LabelFresh Label = 1
)

// FieldKind selects the rendering and quantization policy of a column.
type FieldKind int

const (
	// KindInt renders as bare decimal digits; generated values are
	// quantized to whole numbers (simulated ADC counts, integer ppm, hours).
	KindInt FieldKind = iota

	// KindFloat renders as a fixed two-decimal float (ppm concentrations).
	KindFloat

	// KindLabel marks the Output column; its value comes from Row.Label,
	// not from Row.Values.
	KindLabel
)

// FloatDecimals is the fixed precision for KindFloat columns.
const FloatDecimals = 2

// FieldSpec describes one output column: its header name and rendering kind.
type FieldSpec struct {
	// Name is the exact header literal for this column.
	Name string

	// Kind selects integer, float, or label rendering.
	Kind FieldKind
}

// Schema is the ordered column layout of one dataset variant.
// Exactly one field must be of KindLabel.
type Schema struct {
	// Name identifies the variant for logs and error context.
	Name string

	// Fields lists every output column in serialization order,
	// including the label column.
	Fields []FieldSpec
}

// Row is one fully constructed sample: the numeric values for every
// non-label column in schema order, plus the class label.
// Rows are built in one shot by the generators and never mutated.
type Row struct {
	// Values holds one entry per non-label field, in schema order.
	Values []float64

	// Label is the freshness class of this sample.
	Label Label
}

// Validate checks the structural invariants of the schema: a non-empty
// name, at least one field, non-empty field names, and exactly one label
// column. Returns ErrBadSchema (wrapped with context) on violation.
// Complexity: O(len(Fields)).
func (s Schema) Validate() error {
	if s.Name == "" {
		return errors.Join(ErrBadSchema, errors.New("schema name is empty"))
	}
	if len(s.Fields) == 0 {
		return errors.Join(ErrBadSchema, errors.New("schema has no fields"))
	}

	labels := 0
	for _, f := range s.Fields {
		if f.Name == "" {
			return errors.Join(ErrBadSchema, errors.New("field name is empty"))
		}
		if f.Kind == KindLabel {
			labels++
		}
	}
	if labels != 1 {
		return errors.Join(ErrBadSchema, errors.New("schema must declare exactly one label column"))
	}

	return nil
}

// Header returns the exact header literals in column order.
// Complexity: O(len(Fields)).
func (s Schema) Header() []string {
	header := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		header[i] = f.Name
	}

	return header
}

// ValueWidth reports how many values a Row must carry for this schema
// (every column except the label).
// Complexity: O(len(Fields)).
func (s Schema) ValueWidth() int {
	width := 0
	for _, f := range s.Fields {
		if f.Kind != KindLabel {
			width++
		}
	}

	return width
}

// Render serializes one Row into its textual cells in column order.
// Integer columns assume their value is already whole (the generators
// quantize at draw time); float columns are fixed to FloatDecimals.
// Returns ErrArity if the row width does not match the schema.
// Complexity: O(len(Fields)).
func (s Schema) Render(r Row) ([]string, error) {
	if len(r.Values) != s.ValueWidth() {
		return nil, ErrArity
	}

	cells := make([]string, len(s.Fields))
	vi := 0 // next index into r.Values
	for i, f := range s.Fields {
		switch f.Kind {
		case KindLabel:
			cells[i] = strconv.Itoa(int(r.Label))
		case KindFloat:
			cells[i] = strconv.FormatFloat(r.Values[vi], 'f', FloatDecimals, 64)
			vi++
		default: // KindInt
			cells[i] = strconv.FormatInt(int64(r.Values[vi]), 10)
			vi++
		}
	}

	return cells, nil
}
