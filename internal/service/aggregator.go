package service

import (
	"witt-interpreter-be/internal/entity"
)

// MergeCitations appends candidates that are not already present, matching by
// citation id. Existing entries keep their position and content.
func MergeCitations(existing, candidates []entity.Citation) []entity.Citation {
	seen := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		seen[c.Id] = struct{}{}
	}

	merged := make([]entity.Citation, len(existing), len(existing)+len(candidates))
	copy(merged, existing)
	for _, c := range candidates {
		if _, ok := seen[c.Id]; ok {
			continue
		}
		seen[c.Id] = struct{}{}
		merged = append(merged, c)
	}
	return merged
}

// ReplaceFramework swaps exactly one framework result, matched by id. Results
// for other frameworks pass through untouched; an unmatched id leaves the
// slice unchanged.
func ReplaceFramework(results []entity.FrameworkResult, updated entity.FrameworkResult) []entity.FrameworkResult {
	out := make([]entity.FrameworkResult, len(results))
	for i, r := range results {
		if r.Id == updated.Id {
			out[i] = updated
		} else {
			out[i] = r
		}
	}
	return out
}

// SplitByOrigin partitions stored citations back into their source corpora so
// a single framework can be regenerated without re-querying the vector store.
func SplitByOrigin(citations []entity.Citation) (primary, secondary []entity.Citation) {
	for _, c := range citations {
		switch c.Origin {
		case entity.OriginSecondary:
			secondary = append(secondary, c)
		default:
			primary = append(primary, c)
		}
	}
	return primary, secondary
}
