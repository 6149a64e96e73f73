// Package nav owns the navigation shell state: which page is active and
// whether the mobile menu panel is expanded.
//
// State is driven from a single event loop and does no locking.
package nav

import "aurora/internal/site"

// Scroller resets the visible content to its top. The terminal viewport
// implements it; nil means there is nothing to scroll.
type Scroller interface {
	GotoTop()
}

// Observer is notified after every transition.
type Observer interface {
	PageSelected(from, to site.PageID)
	MenuToggled(open bool)
}

// State is the navigation shell's state machine.
type State struct {
	page      site.PageID
	menuOpen  bool
	scroller  Scroller
	observers []Observer
}

// New returns a State showing Home with the menu closed.
func New(scroller Scroller) *State {
	return &State{
		page:     site.Home,
		scroller: scroller,
	}
}

// SetScroller replaces the scroll target used by SelectPage.
func (s *State) SetScroller(sc Scroller) {
	s.scroller = sc
}

// Observe registers o for transition notifications.
func (s *State) Observe(o Observer) {
	if o != nil {
		s.observers = append(s.observers, o)
	}
}

// SelectPage activates id, closes the menu and scrolls to the top.
// An id outside the page set activates Home.
func (s *State) SelectPage(id site.PageID) {
	if !id.Valid() {
		id = site.Home
	}
	from := s.page
	s.page = id
	s.menuOpen = false
	if s.scroller != nil {
		s.scroller.GotoTop()
	}
	for _, o := range s.observers {
		o.PageSelected(from, id)
	}
}

// ToggleMenu flips the mobile menu visibility.
func (s *State) ToggleMenu() {
	s.menuOpen = !s.menuOpen
	for _, o := range s.observers {
		o.MenuToggled(s.menuOpen)
	}
}

// Page returns the active page.
func (s *State) Page() site.PageID {
	return s.page
}

// MenuOpen reports whether the mobile panel is expanded.
func (s *State) MenuOpen() bool {
	return s.menuOpen
}

// Current returns the document for the active page.
func (s *State) Current() site.Page {
	return site.Render(s.page)
}
