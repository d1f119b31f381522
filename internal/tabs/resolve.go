// Package tabs implements the selection logic of a tab group: pane key
// resolution, keyboard navigation and controlled/uncontrolled active-key state.
package tabs

import "strconv"

// DefaultKeyPrefix is prepended to the positional index of panes that carry
// no explicit key.
const DefaultKeyPrefix = "__default_tab_key_"

// Element is a raw pane as supplied by the caller.
type Element struct {
	Key      string // explicit key; empty means derive from position
	Title    string
	Disabled bool
	Content  any // opaque to the controller
}

// Pane is a resolved pane descriptor.
type Pane struct {
	Key      string
	Title    string
	Disabled bool
	Element  *Element
}

// ResolvePanes projects elems into ordered pane descriptors. Nil entries are
// skipped but still consume their positional index.
func ResolvePanes(elems []*Element) []Pane {
	panes := make([]Pane, 0, len(elems))
	for i, el := range elems {
		if el == nil {
			continue
		}
		key := el.Key
		if key == "" {
			key = DefaultKeyPrefix + strconv.Itoa(i)
		}
		panes = append(panes, Pane{
			Key:      key,
			Title:    el.Title,
			Disabled: el.Disabled,
			Element:  el,
		})
	}
	return panes
}

// Resolver caches the resolved pane list for one collection. Every call to
// Set counts as a new collection, even if the slice contents are equal.
type Resolver struct {
	elems    []*Element
	version  uint64
	cachedAt uint64
	panes    []Pane
	computed int // number of recomputations, for tests
}

// NewResolver creates a Resolver seeded with elems.
func NewResolver(elems []*Element) *Resolver {
	r := &Resolver{}
	r.Set(elems)
	return r
}

// Set replaces the collection and invalidates the cache.
func (r *Resolver) Set(elems []*Element) {
	r.elems = elems
	r.version++
}

// Version returns the current collection version.
func (r *Resolver) Version() uint64 {
	return r.version
}

// Panes returns the resolved panes, recomputing only if the collection
// changed since the last call.
func (r *Resolver) Panes() []Pane {
	if r.cachedAt != r.version {
		r.panes = ResolvePanes(r.elems)
		r.cachedAt = r.version
		r.computed++
	}
	return r.panes
}

// Elements returns the current raw collection.
func (r *Resolver) Elements() []*Element {
	return r.elems
}
