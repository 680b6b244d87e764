package extent

import (
	"fmt"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// FixedMatchTolerance is the slack in inches allowed between the fixed sum
// and the available span when a spec list contains no fill entries.
const FixedMatchTolerance = 0.001

// Spec is one fixed-or-fill extent request with optional bounds. The same
// shape serves widths and heights.
type Spec struct {
	Span model.Span
	Min  float64 // inches, 0 = unbounded
	Max  float64 // inches, 0 = unbounded
}

// FromSection extracts the width request from a section spec.
func FromSection(s model.SectionSpec) Spec {
	return Spec{Span: s.Width, Min: s.MinWidth, Max: s.MaxWidth}
}

// FromSections extracts width requests from a section spec list.
func FromSections(specs []model.SectionSpec) []Spec {
	out := make([]Spec, len(specs))
	for i, s := range specs {
		out[i] = FromSection(s)
	}
	return out
}

// FromRow extracts the height request from a row spec.
func FromRow(r model.RowSpec) Spec {
	return Spec{Span: r.Height, Min: r.MinHeight, Max: r.MaxHeight}
}

// FromRows extracts height requests from a row spec list.
func FromRows(rows []model.RowSpec) []Spec {
	out := make([]Spec, len(rows))
	for i, r := range rows {
		out[i] = FromRow(r)
	}
	return out
}

// ResolutionError reports why a fixed/fill resolution failed. Resolution
// fails closed: no partial results, no silent clamping.
type ResolutionError struct {
	Reason    string  // machine-readable cause
	Index     int     // offending spec index, -1 when the whole input is at fault
	Value     float64 // offending value where useful
	Available float64 // available span at the point of failure
	Message   string
}

func (e *ResolutionError) Error() string { return e.Message }

// Resolution failure reasons.
const (
	ReasonNoSpecs         = "no_specs"
	ReasonBadSpan         = "non_positive_span"
	ReasonBadThickness    = "non_positive_thickness"
	ReasonBadReservation  = "negative_reservation"
	ReasonNoAvailable     = "no_available_space"
	ReasonFixedExceeds    = "fixed_exceeds_available"
	ReasonFillNonPositive = "fill_non_positive"
	ReasonFillOutOfBounds = "fill_out_of_bounds"
	ReasonFixedMismatch   = "fixed_mismatch"
)

// ResolveSectionWidths turns fixed/fill width requests into concrete widths
// along a cabinet run. The available span is the total minus two outer
// panels and one divider between each pair of sections; fills share the
// remainder equally.
func ResolveSectionWidths(specs []Spec, totalSpan, thickness float64) ([]float64, error) {
	if err := checkInputs(specs, totalSpan, thickness); err != nil {
		return nil, err
	}
	available := totalSpan - 2*thickness - float64(len(specs)-1)*thickness
	return resolve(specs, available)
}

// ResolveRowHeights turns fixed/fill row height requests into concrete
// heights stacked in a cabinet, subtracting the top and bottom panels, one
// divider between each pair of rows, and a reserved base zone (toe kick).
func ResolveRowHeights(specs []Spec, totalSpan, thickness, reservedBase float64) ([]float64, error) {
	if err := checkInputs(specs, totalSpan, thickness); err != nil {
		return nil, err
	}
	if reservedBase < 0 {
		return nil, &ResolutionError{
			Reason:  ReasonBadReservation,
			Index:   -1,
			Value:   reservedBase,
			Message: fmt.Sprintf("reserved base height must not be negative, got %.3f", reservedBase),
		}
	}
	available := totalSpan - 2*thickness - float64(len(specs)-1)*thickness - reservedBase
	return resolve(specs, available)
}

// ResolveNestedRowHeights resolves row heights inside one already-sized
// section: no outer panels to subtract, only the dividers between rows.
func ResolveNestedRowHeights(specs []Spec, sectionHeight, thickness float64) ([]float64, error) {
	if err := checkInputs(specs, sectionHeight, thickness); err != nil {
		return nil, err
	}
	available := sectionHeight - float64(len(specs)-1)*thickness
	return resolve(specs, available)
}

func checkInputs(specs []Spec, totalSpan, thickness float64) error {
	if len(specs) == 0 {
		return &ResolutionError{
			Reason:  ReasonNoSpecs,
			Index:   -1,
			Message: "no extent specs to resolve",
		}
	}
	if totalSpan <= 0 {
		return &ResolutionError{
			Reason:  ReasonBadSpan,
			Index:   -1,
			Value:   totalSpan,
			Message: fmt.Sprintf("total span must be positive, got %.3f", totalSpan),
		}
	}
	if thickness <= 0 {
		return &ResolutionError{
			Reason:  ReasonBadThickness,
			Index:   -1,
			Value:   thickness,
			Message: fmt.Sprintf("material thickness must be positive, got %.3f", thickness),
		}
	}
	return nil
}

// resolve distributes an available span across fixed and fill specs.
func resolve(specs []Spec, available float64) ([]float64, error) {
	if available <= 0 {
		return nil, &ResolutionError{
			Reason:    ReasonNoAvailable,
			Index:     -1,
			Available: available,
			Message:   fmt.Sprintf("no space left after panel subtractions: %.3f available", available),
		}
	}

	var fixedSum float64
	fillCount := 0
	for _, s := range specs {
		if s.Span.Fill {
			fillCount++
		} else {
			fixedSum += s.Span.Value
		}
	}

	if fixedSum > available {
		return nil, &ResolutionError{
			Reason:    ReasonFixedExceeds,
			Index:     -1,
			Value:     fixedSum,
			Available: available,
			Message:   fmt.Sprintf("fixed extents total %.3f but only %.3f is available", fixedSum, available),
		}
	}

	if fillCount == 0 {
		if diff := fixedSum - available; diff > FixedMatchTolerance || diff < -FixedMatchTolerance {
			return nil, &ResolutionError{
				Reason:    ReasonFixedMismatch,
				Index:     -1,
				Value:     fixedSum,
				Available: available,
				Message:   fmt.Sprintf("fixed extents total %.3f must match available %.3f when nothing fills", fixedSum, available),
			}
		}
		out := make([]float64, len(specs))
		for i, s := range specs {
			out[i] = s.Span.Value
		}
		return out, nil
	}

	fillValue := (available - fixedSum) / float64(fillCount)
	if fillValue <= 0 {
		return nil, &ResolutionError{
			Reason:    ReasonFillNonPositive,
			Index:     -1,
			Value:     fillValue,
			Available: available,
			Message:   fmt.Sprintf("fill extent resolves to %.3f; fixed extents leave no room", fillValue),
		}
	}

	out := make([]float64, len(specs))
	for i, s := range specs {
		if !s.Span.Fill {
			out[i] = s.Span.Value
			continue
		}
		if s.Min > 0 && fillValue < s.Min {
			return nil, &ResolutionError{
				Reason:  ReasonFillOutOfBounds,
				Index:   i,
				Value:   fillValue,
				Message: fmt.Sprintf("fill extent %.3f below minimum %.3f for spec %d", fillValue, s.Min, i),
			}
		}
		if s.Max > 0 && fillValue > s.Max {
			return nil, &ResolutionError{
				Reason:  ReasonFillOutOfBounds,
				Index:   i,
				Value:   fillValue,
				Message: fmt.Sprintf("fill extent %.3f above maximum %.3f for spec %d", fillValue, s.Max, i),
			}
		}
		out[i] = fillValue
	}
	return out, nil
}

// ValidateSectionWidths is the non-throwing counterpart of
// ResolveSectionWidths: it gathers every problem it can find and returns
// them as human-readable strings, nil when the request is resolvable.
func ValidateSectionWidths(specs []Spec, totalSpan, thickness float64) []string {
	return validate(specs, totalSpan, thickness, func() (float64, bool) {
		return totalSpan - 2*thickness - float64(len(specs)-1)*thickness, true
	})
}

// ValidateRowHeights gathers problems for a row height request without
// failing, including the reserved base zone subtraction.
func ValidateRowHeights(specs []Spec, totalSpan, thickness, reservedBase float64) []string {
	var msgs []string
	if reservedBase < 0 {
		msgs = append(msgs, fmt.Sprintf("reserved base height must not be negative, got %.3f", reservedBase))
	}
	rest := validate(specs, totalSpan, thickness, func() (float64, bool) {
		return totalSpan - 2*thickness - float64(len(specs)-1)*thickness - reservedBase, reservedBase >= 0
	})
	return append(msgs, rest...)
}

func validate(specs []Spec, totalSpan, thickness float64, availableFn func() (float64, bool)) []string {
	var msgs []string
	if len(specs) == 0 {
		msgs = append(msgs, "no extent specs to resolve")
	}
	if totalSpan <= 0 {
		msgs = append(msgs, fmt.Sprintf("total span must be positive, got %.3f", totalSpan))
	}
	if thickness <= 0 {
		msgs = append(msgs, fmt.Sprintf("material thickness must be positive, got %.3f", thickness))
	}
	if len(msgs) > 0 || len(specs) == 0 {
		return msgs
	}

	available, ok := availableFn()
	if !ok {
		return msgs
	}
	if available <= 0 {
		return append(msgs, fmt.Sprintf("no space left after panel subtractions: %.3f available", available))
	}

	var fixedSum float64
	fillCount := 0
	for _, s := range specs {
		if s.Span.Fill {
			fillCount++
		} else {
			fixedSum += s.Span.Value
		}
	}

	if fixedSum > available {
		msgs = append(msgs, fmt.Sprintf("fixed extents total %.3f but only %.3f is available", fixedSum, available))
		return msgs
	}

	if fillCount == 0 {
		if diff := fixedSum - available; diff > FixedMatchTolerance || diff < -FixedMatchTolerance {
			msgs = append(msgs, fmt.Sprintf("fixed extents total %.3f must match available %.3f when nothing fills", fixedSum, available))
		}
		return msgs
	}

	fillValue := (available - fixedSum) / float64(fillCount)
	if fillValue <= 0 {
		return append(msgs, fmt.Sprintf("fill extent resolves to %.3f; fixed extents leave no room", fillValue))
	}
	for i, s := range specs {
		if !s.Span.Fill {
			continue
		}
		if s.Min > 0 && fillValue < s.Min {
			msgs = append(msgs, fmt.Sprintf("fill extent %.3f below minimum %.3f for spec %d", fillValue, s.Min, i))
		}
		if s.Max > 0 && fillValue > s.Max {
			msgs = append(msgs, fmt.Sprintf("fill extent %.3f above maximum %.3f for spec %d", fillValue, s.Max, i))
		}
	}
	return msgs
}
