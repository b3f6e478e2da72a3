package carousel

// State is an immutable view of a Controller. The real-index helpers are
// derived from ActiveIndex on every call.
type State struct {
	ActiveIndex       int
	Size              int
	TransitionEnabled bool
	Phase             Phase
	Version           uint64
}

// OnClone reports whether the cloned first slide is showing.
func (s State) OnClone() bool {
	return s.Size > 0 && s.ActiveIndex == s.Size
}

// CurrentRealIndex returns the catalog index on screen.
func (s State) CurrentRealIndex() int {
	if s.Size < 1 {
		return 0
	}
	return s.ActiveIndex % s.Size
}

// PreviousRealIndex returns the catalog index before the current one.
func (s State) PreviousRealIndex() int {
	if s.Size < 1 {
		return 0
	}
	return normalize(s.ActiveIndex-1, s.Size)
}

// NextRealIndex returns the catalog index after the current one.
func (s State) NextRealIndex() int {
	if s.Size < 1 {
		return 0
	}
	return (s.ActiveIndex + 1) % s.Size
}

// IsSlideActive reports whether catalog entry i is visibly showing. The
// clone counts as entry 0 so in-card animations keep running through the
// teleport.
func (s State) IsSlideActive(i int) bool {
	if i == s.CurrentRealIndex() {
		return true
	}
	return s.OnClone() && i == 0
}

// Extended returns the catalog with its first entry appended, the track the
// carousel slides along.
func Extended[T any](catalog []T) []T {
	if len(catalog) == 0 {
		return nil
	}
	out := make([]T, 0, len(catalog)+1)
	out = append(out, catalog...)
	return append(out, catalog[0])
}
