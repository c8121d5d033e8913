package domain

import "sort"

// SelectionItem quantity and headcount chosen for one service
type SelectionItem struct {
	Quantity     int `json:"quantity"`
	Participants int `json:"participants"`
}

// Selections selected services keyed by service id
type Selections map[string]SelectionItem

// IDs returns selected service ids in ascending order
func (s Selections) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns an independent copy
func (s Selections) Clone() Selections {
	out := make(Selections, len(s))
	for id, item := range s {
		out[id] = item
	}
	return out
}

// HasCategory reports whether any selected service of the catalog belongs to the category
func (s Selections) HasCategory(catalog Catalog, category ServiceCategory) bool {
	for id := range s {
		if svc, ok := catalog.Lookup(id); ok && svc.Category == category {
			return true
		}
	}
	return false
}
