// Package debounce provides a generic trailing-edge debouncer: a burst of
// values collapses into one callback carrying the latest value, delivered
// after a quiet period.
//
//	d := debounce.New(150*time.Millisecond, func(w int) {
//	    fmt.Println("settled at", w)
//	})
//	defer d.Stop()
//
//	d.Set(320)
//	d.Set(768)
//	d.Set(1024) // only this value is delivered
//
// It backs pkg/viewport's resize handling, where per-pixel resize events
// must not trigger per-pixel recomputation.
package debounce
