package nav

import (
	"log"

	"aurora/internal/site"
)

// LogObserver writes transitions to Logger.
type LogObserver struct {
	Logger *log.Logger
}

// PageSelected implements Observer.
func (l LogObserver) PageSelected(from, to site.PageID) {
	if l.Logger == nil {
		return
	}
	l.Logger.Printf("nav: select page %s -> %s", from.Slug(), to.Slug())
}

// MenuToggled implements Observer.
func (l LogObserver) MenuToggled(open bool) {
	if l.Logger == nil {
		return
	}
	l.Logger.Printf("nav: menu open=%v", open)
}
