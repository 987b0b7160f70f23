// Package sensor contains unit tests for the schema and row primitives:
// structural validation, header emission, and cell rendering.
package sensor

import (
	"errors"
	"reflect"
	"testing"
)

// testSchema is a mixed-kind layout mirroring the ppm variant's shape.
func testSchema() Schema {
	return Schema{
		Name: "Test",
		Fields: []FieldSpec{
			{Name: "A_PPM", Kind: KindFloat},
			{Name: "B_Analog", Kind: KindInt},
			{Name: "Output", Kind: KindLabel},
			{Name: "C_Hours", Kind: KindInt},
		},
	}
}

// TestSchemaValidate exercises every structural violation.
func TestSchemaValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		schema Schema
		ok     bool
	}{
		{"valid", testSchema(), true},
		{"empty name", Schema{Fields: testSchema().Fields}, false},
		{"no fields", Schema{Name: "X"}, false},
		{"empty field name", Schema{Name: "X", Fields: []FieldSpec{{Kind: KindLabel}}}, false},
		{"no label", Schema{Name: "X", Fields: []FieldSpec{{Name: "a", Kind: KindInt}}}, false},
		{"two labels", Schema{Name: "X", Fields: []FieldSpec{
			{Name: "a", Kind: KindLabel}, {Name: "b", Kind: KindLabel},
		}}, false},
	}

	for _, tc := range cases {
		err := tc.schema.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("%s: expected error, got nil", tc.name)
			} else if !errors.Is(err, ErrBadSchema) {
				t.Errorf("%s: expected ErrBadSchema, got %v", tc.name, err)
			}
		}
	}
}

// TestSchemaHeader verifies exact header literals in declaration order.
func TestSchemaHeader(t *testing.T) {
	t.Parallel()

	want := []string{"A_PPM", "B_Analog", "Output", "C_Hours"}
	if got := testSchema().Header(); !reflect.DeepEqual(got, want) {
		t.Errorf("Header: expected %v, got %v", want, got)
	}
}

// TestSchemaValueWidth verifies that the label column is excluded.
func TestSchemaValueWidth(t *testing.T) {
	t.Parallel()

	if got := testSchema().ValueWidth(); got != 3 {
		t.Errorf("ValueWidth: expected 3, got %d", got)
	}
}

// TestSchemaRender verifies formatting per kind: floats fixed to two
// decimals, integers as bare digits, label interleaved at its position.
func TestSchemaRender(t *testing.T) {
	t.Parallel()

	s := testSchema()

	got, err := s.Render(Row{Values: []float64{12.5, 431, 87}, Label: LabelFresh})
	if err != nil {
		t.Fatalf("Render: unexpected error %v", err)
	}
	want := []string{"12.50", "431", "1", "87"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render: expected %v, got %v", want, got)
	}

	got, err = s.Render(Row{Values: []float64{399.999, 0, 0}, Label: LabelBad})
	if err != nil {
		t.Fatalf("Render: unexpected error %v", err)
	}
	if got[0] != "400.00" || got[2] != "0" {
		t.Errorf("Render: expected rounding to 400.00 and label 0, got %v", got)
	}
}

// TestSchemaRenderArity verifies that a width mismatch yields ErrArity.
func TestSchemaRenderArity(t *testing.T) {
	t.Parallel()

	_, err := testSchema().Render(Row{Values: []float64{1, 2}, Label: LabelBad})
	if !errors.Is(err, ErrArity) {
		t.Errorf("Render short row: expected ErrArity, got %v", err)
	}
}
