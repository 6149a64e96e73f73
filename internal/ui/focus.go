package ui

import "aurora/internal/site"

// FocusManager tracks which navigation entry has keyboard focus.
type FocusManager struct {
	Current site.PageID
	Order   []site.PageID // tab order
}

// NewFocusManager focuses the first entry of order.
func NewFocusManager(order []site.PageID) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

// Next moves focus forward, wrapping at the end.
func (f *FocusManager) Next() site.PageID {
	if len(f.Order) == 0 {
		return f.Current
	}
	f.Current = f.Order[(f.index()+1)%len(f.Order)]
	return f.Current
}

// Prev moves focus backward, wrapping at the start.
func (f *FocusManager) Prev() site.PageID {
	if len(f.Order) == 0 {
		return f.Current
	}
	i := f.index() - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	f.Current = f.Order[i]
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id site.PageID) bool {
	for _, o := range f.Order {
		if o == id {
			f.Current = id
			return true
		}
	}
	return false
}
