package state

// Selection is an optional index into a list whose length is supplied by the caller.
//
// Movement wraps cyclically: next from the last index selects 0 and previous from 0 selects the last index.
// On an empty list every operation leaves the selection unset.
type Selection struct {
	index int
	set   bool
}

// Index returns the selected index and whether one is set.
func (s Selection) Index() (int, bool) {
	return s.index, s.set
}

// Select sets the index, clamped into [0, n). An empty list clears the selection.
func (s *Selection) Select(index, n int) {
	if n <= 0 {
		s.Clear()
		return
	}
	s.index = min(max(index, 0), n-1)
	s.set = true
}

// Clear unsets the selection.
func (s *Selection) Clear() {
	s.index, s.set = 0, false
}

// Next moves to (i+1) mod n. An unset selection over a non-empty list selects 0.
func (s *Selection) Next(n int) {
	switch {
	case n <= 0:
		s.Clear()
	case !s.set:
		s.Select(0, n)
	default:
		s.index = (s.index + 1) % n
	}
}

// Previous moves to (i-1+n) mod n. An unset selection over a non-empty list selects 0.
func (s *Selection) Previous(n int) {
	switch {
	case n <= 0:
		s.Clear()
	case !s.set:
		s.Select(0, n)
	default:
		s.index = (s.index - 1 + n) % n
	}
}

// Fit restores the invariant after the list changed length to n: unset iff n is 0, otherwise in range.
func (s *Selection) Fit(n int) {
	if !s.set {
		if n > 0 {
			s.Select(0, n)
		}
		return
	}
	s.Select(s.index, n)
}
