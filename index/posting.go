package index

import "sort"

// PostingSet is the set of item IDs in which a term occurs at least once.
// Membership, not count: an item repeating a term still contributes one entry.
type PostingSet map[string]struct{}

// Add records that the item contains the term.
func (ps PostingSet) Add(itemID string) {
	ps[itemID] = struct{}{}
}

// Has reports whether the item contains the term.
func (ps PostingSet) Has(itemID string) bool {
	_, ok := ps[itemID]
	return ok
}

// IDs returns the item IDs of the set in ascending order.
func (ps PostingSet) IDs() []string {
	ids := make([]string, 0, len(ps))
	for id := range ps {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
