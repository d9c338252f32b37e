package optimizer

import (
	"github.com/coursepilot/schedule-optimizer-api/internal/models"
)

// GenerateCombinations enumerates section tuples picking exactly one section
// per course, keeping only tuples that are conflict-free. The search is
// depth-first and prunes as soon as a partial combination conflicts, so the
// full Cartesian product is never materialized. Zero input courses yield zero
// combinations; a single course yields one singleton combination per
// candidate.
func GenerateCombinations(coursesSections [][]models.Section) [][]models.Section {
	if len(coursesSections) == 0 {
		return nil
	}

	var results [][]models.Section
	partial := make([]models.Section, 0, len(coursesSections))

	var walk func(courseIdx int)
	walk = func(courseIdx int) {
		if courseIdx == len(coursesSections) {
			results = append(results, append([]models.Section(nil), partial...))
			return
		}
		for _, candidate := range coursesSections[courseIdx] {
			partial = append(partial, candidate)
			// Singletons are trivially conflict-free; beyond that the
			// partial tuple is re-checked before descending.
			if len(partial) == 1 || !HasConflict(partial) {
				walk(courseIdx + 1)
			}
			partial = partial[:len(partial)-1]
		}
	}
	walk(0)

	return results
}
