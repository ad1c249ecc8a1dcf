// Package carousel computes scroll-driven carousel positions: which slide
// a scroll offset snaps to, the offset that centers a given slide, and
// whether navigation in either direction is possible.
//
//	l := carousel.Layout{SlideCount: 5, SlideSize: 300, Gap: 16}
//	idx := l.IndexAt(920)      // nearest snap point
//	off := l.OffsetOf(idx + 1) // scroll target for "next"
//
// All functions are pure and total; out-of-range inputs are clamped.
package carousel
