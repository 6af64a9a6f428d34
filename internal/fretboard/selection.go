package fretboard

import "sort"

// Selection holds the toggled positions and the subset marked as root.
// Every root is expected to be selected; Prune repairs any that are not.
type Selection struct {
	selected map[Position]struct{}
	roots    map[Position]struct{}
}

func NewSelection() *Selection {
	return &Selection{
		selected: map[Position]struct{}{},
		roots:    map[Position]struct{}{},
	}
}

// Toggle flips p. It reports true when p became selected, which is the
// only transition that should sound the note.
func (s *Selection) Toggle(p Position) bool {
	if _, ok := s.selected[p]; ok {
		delete(s.selected, p)
		delete(s.roots, p)
		return false
	}
	s.selected[p] = struct{}{}
	return true
}

// ToggleRoot flips the root mark on a selected position. Unselected
// positions are left alone and false is returned.
func (s *Selection) ToggleRoot(p Position) bool {
	if _, ok := s.roots[p]; ok {
		delete(s.roots, p)
		return true
	}
	if _, ok := s.selected[p]; !ok {
		return false
	}
	s.roots[p] = struct{}{}
	return true
}

func (s *Selection) Reset() {
	s.selected = map[Position]struct{}{}
	s.roots = map[Position]struct{}{}
}

func (s *Selection) Selected(p Position) bool {
	_, ok := s.selected[p]
	return ok
}

func (s *Selection) Root(p Position) bool {
	_, ok := s.roots[p]
	return ok
}

func (s *Selection) Len() int {
	return len(s.selected)
}

// Positions returns the selection in ascending (fret, string) order.
func (s *Selection) Positions() []Position {
	return sorted(s.selected)
}

// Roots returns the root marks in ascending (fret, string) order.
func (s *Selection) Roots() []Position {
	return sorted(s.roots)
}

// Prune drops root marks whose position is no longer selected and returns
// how many were dropped.
func (s *Selection) Prune() int {
	n := 0
	for p := range s.roots {
		if _, ok := s.selected[p]; !ok {
			delete(s.roots, p)
			n++
		}
	}
	return n
}

func sorted(set map[Position]struct{}) []Position {
	out := make([]Position, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
