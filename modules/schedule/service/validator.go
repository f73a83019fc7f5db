package service

import (
	"fmt"
	"regexp"

	"delivery-availability/modules/schedule/entity"
)

// Violation kinds reported by the validator.
const (
	ViolationInvalidRange = "invalid_range"
	ViolationOverlap      = "overlap"
)

// Violation describes one problem in a set of time ranges. Index and
// OtherIndex refer to positions in the input slice; OtherIndex is -1 for
// single-range violations.
type Violation struct {
	Kind       string `json:"kind"`
	Index      int    `json:"index"`
	OtherIndex int    `json:"other_index"`
	Message    string `json:"message"`
}

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsTimeOfDay reports whether s is a zero-padded "HH:MM" wall-clock value.
func IsTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(s)
}

// ValidateRanges checks a set of time ranges for well-formedness and pairwise
// overlap. It returns every violation found, not just the first, so a single
// correction pass is possible. Ranges that merely touch (one ends exactly
// where the next starts) do not overlap.
func ValidateRanges(ranges []entity.TimeRange) []Violation {
	var violations []Violation

	for i, r := range ranges {
		if r.Start >= r.End {
			violations = append(violations, Violation{
				Kind:       ViolationInvalidRange,
				Index:      i,
				OtherIndex: -1,
				Message:    fmt.Sprintf("range %s-%s: start must be before end", r.Start, r.End),
			})
		}
	}

	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			if rangesOverlap(ranges[i], ranges[j]) {
				violations = append(violations, Violation{
					Kind:       ViolationOverlap,
					Index:      i,
					OtherIndex: j,
					Message: fmt.Sprintf("range %s-%s overlaps range %s-%s",
						ranges[i].Start, ranges[i].End, ranges[j].Start, ranges[j].End),
				})
			}
		}
	}

	return violations
}

func rangesOverlap(a, b entity.TimeRange) bool {
	// Start inside, end inside, or full containment.
	if a.Start <= b.Start && b.Start < a.End {
		return true
	}
	if a.Start < b.End && b.End <= a.End {
		return true
	}
	if a.Start >= b.Start && a.End <= b.End {
		return true
	}
	return false
}
