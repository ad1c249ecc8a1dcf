package carousel

import "math"

// Layout describes the geometry of a horizontally scrolling carousel:
// SlideCount slides of SlideSize each, separated by Gap, viewed through a
// viewport of ViewportSize. All sizes are in the scroll axis unit
// (typically pixels).
type Layout struct {
	SlideCount   int
	SlideSize    float64
	Gap          float64
	ViewportSize float64
}

// step is the distance between the snap points of adjacent slides.
func (l Layout) step() float64 {
	return l.SlideSize + l.Gap
}

// MaxOffset is the scroll offset of the last slide's snap point.
func (l Layout) MaxOffset() float64 {
	if l.SlideCount <= 1 {
		return 0
	}
	return float64(l.SlideCount-1) * l.step()
}

// IndexAt returns the index of the slide whose snap point is nearest to
// the given scroll offset, clamped to the valid range. A layout with no
// slides always yields 0.
func (l Layout) IndexAt(offset float64) int {
	if l.SlideCount <= 1 || l.step() <= 0 {
		return 0
	}
	idx := int(math.Round(offset / l.step()))
	return clamp(idx, 0, l.SlideCount-1)
}

// OffsetOf returns the scroll offset that aligns the slide at index with
// its snap point. The index is clamped to the valid range.
func (l Layout) OffsetOf(index int) float64 {
	if l.SlideCount <= 1 {
		return 0
	}
	return float64(clamp(index, 0, l.SlideCount-1)) * l.step()
}

// Progress maps a scroll offset to [0, 1] across the scrollable range.
func (l Layout) Progress(offset float64) float64 {
	maxOffset := l.MaxOffset()
	if maxOffset <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, offset/maxOffset))
}

// CanScrollPrev reports whether a previous slide exists at index.
func (l Layout) CanScrollPrev(index int) bool {
	return index > 0 && l.SlideCount > 1
}

// CanScrollNext reports whether a next slide exists at index.
func (l Layout) CanScrollNext(index int) bool {
	return l.SlideCount > 1 && index < l.SlideCount-1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
