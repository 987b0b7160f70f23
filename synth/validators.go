// Package synth provides validation helpers enforcing the structural
// contract of Variant tables before any sampling begins.
//
// Each helper returns an error wrapping ErrInvalidVariant with enough
// context to locate the offending table entry; generation code may then
// assume a valid table and never re-checks.
package synth

import (
	"fmt"
)

// validateVariant checks the full structural contract of a variant table.
// Returns nil or an error wrapping ErrInvalidVariant.
// Complexity: O(fields × subtypes).
func validateVariant(v Variant) error {
	if err := v.Schema.Validate(); err != nil {
		return fmt.Errorf("schema: %v: %w", err, ErrInvalidVariant)
	}

	primary := v.primaryCount()
	if primary < 1 {
		return fmt.Errorf("variant %q: no primary fields: %w", v.Schema.Name, ErrInvalidVariant)
	}

	// Fresh profile must cover every primary field.
	if err := validateProfile(v.Schema.Name, "fresh", v.Fresh, primary); err != nil {
		return err
	}

	// Bad class must be a non-empty mixture with full per-subtype profiles.
	if len(v.Bad) == 0 {
		return fmt.Errorf("variant %q: no bad subtypes: %w", v.Schema.Name, ErrInvalidVariant)
	}
	weights := make([]float64, len(v.Bad))
	for i, st := range v.Bad {
		weights[i] = st.Weight
		if err := validateProfile(v.Schema.Name, st.Name, st.Draws, primary); err != nil {
			return err
		}
	}
	if _, err := newCategorical(weights); err != nil {
		return fmt.Errorf("variant %q: subtype weights: %v: %w", v.Schema.Name, err, ErrInvalidVariant)
	}

	if err := validateAffine(v, primary); err != nil {
		return err
	}

	return validateShelfLife(v, primary)
}

// validateProfile checks one per-class profile: exact width and sane draws.
func validateProfile(variant, class string, p Profile, primary int) error {
	if len(p) != primary {
		return fmt.Errorf("variant %q: %s profile has %d draws, want %d: %w",
			variant, class, len(p), primary, ErrInvalidVariant)
	}
	for i, d := range p {
		if d.Base.Lo > d.Base.Hi {
			return fmt.Errorf("variant %q: %s field %d: base range inverted: %w",
				variant, class, i, ErrInvalidVariant)
		}
		if d.Clip.Lo > d.Clip.Hi {
			return fmt.Errorf("variant %q: %s field %d: clip range inverted: %w",
				variant, class, i, ErrInvalidVariant)
		}
		if d.Sigma < 0 {
			return fmt.Errorf("variant %q: %s field %d: negative sigma: %w",
				variant, class, i, ErrInvalidVariant)
		}
	}

	return nil
}

// validateAffine checks the optional correlated-analog spec.
func validateAffine(v Variant, primary int) error {
	a := v.Analog
	if a == nil {
		return nil
	}

	width := v.Schema.ValueWidth()
	if a.Src < 0 || a.Src >= primary {
		return fmt.Errorf("variant %q: affine source %d not a primary field: %w",
			v.Schema.Name, a.Src, ErrInvalidVariant)
	}
	if a.Dst < primary || a.Dst >= width {
		return fmt.Errorf("variant %q: affine target %d not a derived column: %w",
			v.Schema.Name, a.Dst, ErrInvalidVariant)
	}
	if a.Sigma < 0 {
		return fmt.Errorf("variant %q: affine sigma negative: %w", v.Schema.Name, ErrInvalidVariant)
	}
	if a.Clip.Lo > a.Clip.Hi {
		return fmt.Errorf("variant %q: affine clip inverted: %w", v.Schema.Name, ErrInvalidVariant)
	}
	if a.DecorrelatedSubtype != NoDecorrelation {
		if a.DecorrelatedSubtype < 0 || a.DecorrelatedSubtype >= len(v.Bad) {
			return fmt.Errorf("variant %q: decorrelated subtype %d out of range: %w",
				v.Schema.Name, a.DecorrelatedSubtype, ErrInvalidVariant)
		}
		if a.DecorrelatedRange.Lo > a.DecorrelatedRange.Hi {
			return fmt.Errorf("variant %q: decorrelated range inverted: %w",
				v.Schema.Name, ErrInvalidVariant)
		}
	}

	return nil
}

// validateShelfLife checks the optional derived-hours spec. Normalization
// widths must be strictly positive: they are division denominators.
func validateShelfLife(v Variant, primary int) error {
	s := v.ShelfLife
	if s == nil {
		return nil
	}

	width := v.Schema.ValueWidth()
	if s.Dst < primary || s.Dst >= width {
		return fmt.Errorf("variant %q: shelf-life target %d not a derived column: %w",
			v.Schema.Name, s.Dst, ErrInvalidVariant)
	}
	if len(s.FreshNorm) != primary || len(s.BadNorm) != primary {
		return fmt.Errorf("variant %q: shelf-life normalization width mismatch: %w",
			v.Schema.Name, ErrInvalidVariant)
	}
	for i := 0; i < primary; i++ {
		if s.FreshNorm[i].Width() <= 0 || s.BadNorm[i].Width() <= 0 {
			return fmt.Errorf("variant %q: shelf-life normalization range %d degenerate: %w",
				v.Schema.Name, i, ErrInvalidVariant)
		}
	}
	if s.FreshHours.Lo > s.FreshHours.Hi || s.BadHours.Lo > s.BadHours.Hi {
		return fmt.Errorf("variant %q: shelf-life hour range inverted: %w",
			v.Schema.Name, ErrInvalidVariant)
	}
	if s.FreshJitter < 0 || s.BadJitter < 0 {
		return fmt.Errorf("variant %q: shelf-life jitter negative: %w",
			v.Schema.Name, ErrInvalidVariant)
	}
	// Disjoint hour ranges let consumers read the label off the hours.
	if s.BadHours.Hi >= s.FreshHours.Lo && s.FreshHours.Hi >= s.BadHours.Lo {
		return fmt.Errorf("variant %q: fresh and bad hour ranges overlap: %w",
			v.Schema.Name, ErrInvalidVariant)
	}

	return nil
}
