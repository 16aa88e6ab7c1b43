package steps

import "sort"

// PanelSet is an unordered set of step IDs whose log panels are expanded.
// The zero value is an empty set ready to use; mutating methods return a
// new set and leave the receiver untouched.
type PanelSet struct {
	ids map[string]struct{}
}

func NewPanelSet(ids ...string) PanelSet {
	s := PanelSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

func (s PanelSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s PanelSet) Len() int {
	return len(s.ids)
}

func (s PanelSet) Clone() PanelSet {
	c := PanelSet{ids: make(map[string]struct{}, len(s.ids))}
	for id := range s.ids {
		c.ids[id] = struct{}{}
	}
	return c
}

// With returns a copy of s containing id.
func (s PanelSet) With(id string) PanelSet {
	c := s.Clone()
	c.ids[id] = struct{}{}
	return c
}

// Without returns a copy of s without id.
func (s PanelSet) Without(id string) PanelSet {
	c := s.Clone()
	delete(c.ids, id)
	return c
}

func (s PanelSet) Equal(o PanelSet) bool {
	if len(s.ids) != len(o.ids) {
		return false
	}
	for id := range s.ids {
		if !o.Has(id) {
			return false
		}
	}
	return true
}

// IDs returns the members in sorted order.
func (s PanelSet) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
