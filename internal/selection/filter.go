package selection

import (
	"slices"
)

// Filter turns the candidate set into the selectable set.
//
// Blacklisted candidates are removed first. Then candidates already in the
// history are removed; if that leaves nothing, the rotation is exhausted, the
// blacklist-filtered set is used as is and reset is called to clear the
// history. Favorites are then added unconditionally.
//
// An empty candidate set, or one emptied by the blacklist, yields an empty
// result with no side effects: no history reset and no favorites.
func Filter(candidates, blacklist, history, favorites []string, reset func()) []string {
	allowed := exclude(candidates, blacklist)
	if len(allowed) == 0 {
		return nil
	}

	choices := exclude(allowed, history)
	if len(choices) == 0 {
		choices = allowed
		if reset != nil {
			reset()
		}
	}

	choices = append(slices.Clone(choices), favorites...)
	return dedupe(choices)
}

func exclude(items, remove []string) []string {
	drop := make(map[string]struct{}, len(remove))
	for _, r := range remove {
		drop[r] = struct{}{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := drop[it]; !ok {
			out = append(out, it)
		}
	}
	return out
}

// dedupe returns the distinct items, sorted so that callers picking by index
// see a stable order.
func dedupe(items []string) []string {
	out := slices.Clone(items)
	slices.Sort(out)
	return slices.Compact(out)
}
