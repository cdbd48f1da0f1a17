package reconcile

import "sort"

// diffSets splits desired against current into the additions and removals
// a pass must apply. Capabilities present in both are untouched here;
// verifying them against the directory is repair's job.
func diffSets(desired []string, current map[string]struct{}) (toAdd, toRemove []string) {
	desiredSet := make(map[string]struct{}, len(desired))
	for _, id := range desired {
		if id == "" {
			continue
		}
		desiredSet[id] = struct{}{}
	}
	for id := range desiredSet {
		if _, ok := current[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for id := range current {
		if _, ok := desiredSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	// Deterministic order keeps logs and tests stable.
	sort.Strings(toAdd)
	sort.Strings(toRemove)
	return toAdd, toRemove
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
