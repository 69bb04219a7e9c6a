// Package checklist holds the ordered collection of active item texts.
package checklist

import "slices"

// List is an ordered sequence of item texts. Duplicates are allowed.
type List struct {
	items []string
}

// New returns a list holding a copy of items.
func New(items []string) *List {
	return &List{items: slices.Clone(items)}
}

// Items returns a copy of the items in order.
func (l *List) Items() []string { return slices.Clone(l.items) }

func (l *List) Len() int { return len(l.items) }

func (l *List) At(i int) (string, bool) {
	if i < 0 || i >= len(l.items) {
		return "", false
	}
	return l.items[i], true
}

// Add appends text to the end of the list.
func (l *List) Add(text string) {
	l.items = append(l.items, text)
}

// Remove deletes the first item equal to text and reports whether one was
// found. Items match by value, not position: with duplicate texts the first
// occurrence goes, which may not be the row that triggered the removal.
func (l *List) Remove(text string) bool {
	i := slices.Index(l.items, text)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// Replace swaps the whole content, e.g. after reloading the items file.
func (l *List) Replace(items []string) {
	l.items = slices.Clone(items)
}
