package validation

import (
	"fmt"

	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/timeutil"
)

// NormalizeRanges returns ranges with both ends in canonical "HH:MM" form.
// Every range must normalize and satisfy start < end; all failures are
// reported, and the returned slice is nil when there are any.
func NormalizeRanges(field string, ranges []model.TimeRange) ([]model.TimeRange, ValidationErrors) {
	var errs ValidationErrors
	normalized := make([]model.TimeRange, 0, len(ranges))

	for i, r := range ranges {
		name := fmt.Sprintf("%s[%d]", field, i)

		start, okStart := timeutil.NormalizeTimeString(r.Start)
		end, okEnd := timeutil.NormalizeTimeString(r.End)
		switch {
		case !okStart:
			errs = append(errs, ValidationError{Field: name + ".start", Message: fmt.Sprintf("invalid time %q", r.Start)})
			continue
		case !okEnd:
			errs = append(errs, ValidationError{Field: name + ".end", Message: fmt.Sprintf("invalid time %q", r.End)})
			continue
		}

		// "HH:MM" strings compare in time order.
		if start >= end {
			errs = append(errs, ValidationError{Field: name, Message: fmt.Sprintf("start %s must be before end %s", start, end)})
			continue
		}
		normalized = append(normalized, model.TimeRange{Start: start, End: end})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return normalized, nil
}
