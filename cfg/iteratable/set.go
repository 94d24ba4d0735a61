package iteratable

// Set is a set of items of arbitrary (interface{}) type. Items are
// compared with '=='; clients should only store comparable values.
// The zero Set is not usable, create sets with NewSet.
type Set struct {
	items   []interface{}
	inx     int  // iteration position
	exhaust bool // iteration mode: drain the set?
}

// NewSet creates a new set with a given capacity hint.
func NewSet(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}
	return &Set{
		items: make([]interface{}, 0, capacity),
		inx:   -1,
	}
}

// Size returns the number of items in the set.
func (s *Set) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Empty is true if the set contains no items.
func (s *Set) Empty() bool {
	return s.Size() == 0
}

// Contains is true if item is contained in the set.
func (s *Set) Contains(item interface{}) bool {
	if s == nil || item == nil {
		return false
	}
	for _, m := range s.items {
		if m == item {
			return true
		}
	}
	return false
}

// Add adds an item to the set, if it is not already present. Items may be
// added during an active iteration; a once-iteration will visit them.
func (s *Set) Add(item interface{}) {
	if s == nil || item == nil {
		return
	}
	if !s.Contains(item) {
		s.items = append(s.items, item)
	}
}

// Remove removes an item from the set, if present. Returns the item, or
// nil if the set did not contain it.
func (s *Set) Remove(item interface{}) interface{} {
	if s == nil || item == nil {
		return nil
	}
	for i, m := range s.items {
		if m == item {
			s.items = append(s.items[:i], s.items[i+1:]...)
			if s.inx >= i {
				s.inx--
			}
			return m
		}
	}
	return nil
}

// Values returns all items of the set, in insertion order.
func (s *Set) Values() []interface{} {
	if s == nil {
		return []interface{}{}
	}
	return s.items
}

// Copy makes a copy of a set.
func (s *Set) Copy() *Set {
	if s == nil {
		return nil
	}
	c := NewSet(len(s.items))
	c.items = append(c.items, s.items...)
	return c
}

// Equals is true if both sets contain the same items, in any order.
func (s *Set) Equals(other *Set) bool {
	if s.Size() != other.Size() {
		return false
	}
	for _, m := range s.Values() {
		if !other.Contains(m) {
			return false
		}
	}
	return true
}

// Union adds all items of another set to this set. other is unchanged.
// Returns this set.
func (s *Set) Union(other *Set) *Set {
	if s == nil {
		return other.Copy()
	}
	for _, m := range other.Values() {
		s.Add(m)
	}
	return s
}

// Difference removes all items of another set from this set. other is
// unchanged. Returns this set.
func (s *Set) Difference(other *Set) *Set {
	if s == nil || other.Empty() {
		return s
	}
	result := s.items[:0]
	removed := 0
	for _, m := range s.items {
		if other.Contains(m) {
			removed++
		} else {
			result = append(result, m)
		}
	}
	if removed > 0 {
		tracer().Debugf("removed %d items from set", removed)
	}
	s.items = result
	return s
}

// --- Iteration --------------------------------------------------------

// IterateOnce starts an iteration which visits every item exactly once,
// including items appended while the iteration is in progress. The set
// is unchanged.
func (s *Set) IterateOnce() {
	if s == nil {
		return
	}
	s.inx = -1
	s.exhaust = false
}

// Exhaust starts a driving iteration, which pops items off the set until
// it is empty.
func (s *Set) Exhaust() {
	if s == nil {
		return
	}
	s.inx = -1
	s.exhaust = true
}

// Next moves the iteration to the next item, returning false if no item
// is left.
func (s *Set) Next() bool {
	if s == nil {
		return false
	}
	if s.exhaust {
		if s.inx >= 0 && s.inx < len(s.items) { // pop the previous item
			s.items = append(s.items[:s.inx], s.items[s.inx+1:]...)
		}
		s.inx = 0
		return len(s.items) > 0
	}
	s.inx++
	return s.inx < len(s.items)
}

// Item returns the item at the current iteration position, or nil.
func (s *Set) Item() interface{} {
	if s == nil || s.inx < 0 || s.inx >= len(s.items) {
		return nil
	}
	return s.items[s.inx]
}
