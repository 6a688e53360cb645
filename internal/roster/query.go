package roster

import (
	"sort"
	"strings"
)

// FilterState maps filter keys (top-level categories and their sub-values)
// to selected flags. The sub-values are the source of truth: a category's
// flag is always recomputed as the AND of its children.
type FilterState map[string]bool

// NewFilterState returns a state with every category and sub-value selected.
func NewFilterState() FilterState {
	fs := FilterState{}
	for cat, subs := range FilterTree {
		fs[cat] = true
		for _, sub := range subs {
			fs[sub] = true
		}
	}
	return fs
}

// ToggleCategory flips a category and cascades the new value to every child.
// The new value is the negation of "all children selected", so clicking a
// half-checked parent selects everything.
func (fs FilterState) ToggleCategory(category string) {
	subs, ok := FilterTree[category]
	if !ok {
		return
	}
	newValue := !fs.allSelected(subs)
	fs[category] = newValue
	for _, sub := range subs {
		fs[sub] = newValue
	}
}

// ToggleSub flips a single sub-value, then recomputes the parent as the AND
// of its children.
func (fs FilterState) ToggleSub(sub, parent string) {
	subs, ok := FilterTree[parent]
	if !ok {
		return
	}
	fs[sub] = !fs[sub]
	fs[parent] = fs.allSelected(subs)
}

func (fs FilterState) allSelected(keys []string) bool {
	for _, k := range keys {
		if !fs[k] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy, used so a request can mutate toggles
// without touching the caller's state.
func (fs FilterState) Clone() FilterState {
	out := make(FilterState, len(fs))
	for k, v := range fs {
		out[k] = v
	}
	return out
}

// Query filters and orders roster entries. The pipeline is fixed: free-text
// search over name and subtitle, then the category filter (collegiate
// entries keep their tier's flag, professional entries their region's),
// then a stable sort on the first or last name token. Re-running with the
// same inputs always yields the same sequence.
func Query(entries []Entry, search string, filters FilterState, sortOrder string, classifier *Classifier) []Entry {
	needle := strings.ToLower(search)

	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		nameMatch := strings.Contains(strings.ToLower(e.Name), needle)
		subMatch := strings.Contains(strings.ToLower(e.Subtitle), needle)
		if !nameMatch && !subMatch {
			continue
		}

		if classifier.Collegiate(e.Subtitle) {
			if !filters[classifier.Tier(e.Subtitle)] {
				continue
			}
		} else if !filters[classifier.Region(e.Subtitle)] {
			continue
		}
		filtered = append(filtered, e)
	}

	sortEntries(filtered, sortOrder)
	return filtered
}

// sortEntries orders entries in place. Ties keep their input order, so two
// players with the same last name stay in sheet order.
func sortEntries(entries []Entry, sortOrder string) {
	key, descending := sortKey(sortOrder)
	if key == nil {
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := key(entries[i]), key(entries[j])
		if descending {
			return a > b
		}
		return a < b
	})
}

func sortKey(sortOrder string) (func(Entry) string, bool) {
	switch sortOrder {
	case SortLastNameAZ:
		return lastNameKey, false
	case SortLastNameZA:
		return lastNameKey, true
	case SortFirstNameAZ:
		return firstNameKey, false
	case SortFirstNameZA:
		return firstNameKey, true
	default:
		return nil, false
	}
}

// Names split on single spaces; a single-token name serves as both first
// and last name.
func firstNameKey(e Entry) string {
	parts := strings.Split(e.Name, " ")
	return strings.ToLower(parts[0])
}

func lastNameKey(e Entry) string {
	parts := strings.Split(e.Name, " ")
	return strings.ToLower(parts[len(parts)-1])
}
