// Package viewport derives layout breakpoints from viewport widths and
// tracks breakpoint changes over a debounced stream of resize samples.
//
//	t := viewport.NewTracker()
//	defer t.Close()
//
//	unsubscribe := t.OnChange(func(bp viewport.Breakpoint) {
//	    fmt.Println("layout tier:", bp)
//	})
//	defer unsubscribe()
//
//	t.SetWidth(375) // settles to mobile after the debounce period
//
// FromWidth and IsMobile are also usable standalone for one-off checks.
package viewport
