package state

import "slices"

// TabKind identifies a tab controller independent of its position.
type TabKind int

const (
	TabHome TabKind = iota
	TabSources
	TabSettings
)

func (k TabKind) String() string {
	switch k {
	case TabHome:
		return "Home"
	case TabSources:
		return "Sources"
	case TabSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Tabs is a cyclic navigator over a fixed, non-empty sequence of titles.
type Tabs struct {
	titles []string
	active Selection
}

// SetTitles replaces the titles and activates the first one.
//
// An empty titles slice is a programming error and panics.
func (t *Tabs) SetTitles(titles []string) {
	if len(titles) == 0 {
		panic("state: tab titles must not be empty")
	}
	t.titles = slices.Clone(titles)
	t.active.Select(0, len(t.titles))
}

// Titles returns a copy of the tab titles.
func (t *Tabs) Titles() []string { return slices.Clone(t.titles) }

// Len returns the number of tabs.
func (t *Tabs) Len() int { return len(t.titles) }

// Active returns the active tab index and whether one is set.
func (t *Tabs) Active() (int, bool) { return t.active.Index() }

// Set activates index, or unsets the active tab when index is out of range.
func (t *Tabs) Set(index int) {
	if index < 0 || index >= len(t.titles) {
		t.active.Clear()
		return
	}
	t.active.Select(index, len(t.titles))
}

// Next activates the following tab, wrapping to the first. No-op while unset.
func (t *Tabs) Next() {
	if _, ok := t.active.Index(); ok {
		t.active.Next(len(t.titles))
	}
}

// Previous activates the preceding tab, wrapping to the last. No-op while unset.
func (t *Tabs) Previous() {
	if _, ok := t.active.Index(); ok {
		t.active.Previous(len(t.titles))
	}
}
