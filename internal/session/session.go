// Package session keeps per-browser state (the cart and flash messages) in a
// signed cookie. Nothing is stored server-side.
package session

import (
	"sort"
	"strconv"
)

// Flash categories understood by the templates.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

// Cart maps a menu item ID (decimal string) to a positive quantity.
type Cart map[string]int

// Key returns the cart key for a menu item ID.
func Key(itemID uint) string {
	return strconv.FormatUint(uint64(itemID), 10)
}

// Quantity returns the stored quantity for an item.
func (c Cart) Quantity(itemID uint) int {
	return c[Key(itemID)]
}

// Units returns the total number of units across all lines.
func (c Cart) Units() int {
	n := 0
	for _, q := range c {
		n += q
	}
	return n
}

// ItemIDs returns the parsed item IDs in ascending order. Keys that do not
// parse as IDs are skipped.
func (c Cart) ItemIDs() []uint {
	ids := make([]uint, 0, len(c))
	for k := range c {
		id, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Session is the state of one browser session for the duration of a request.
type Session struct {
	cart    Cart
	flashes []Flash
	dirty   bool
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Cart returns a copy of the stored cart; mutate it through AddToCart and ClearCart.
func (s *Session) Cart() Cart {
	out := make(Cart, len(s.cart))
	for k, v := range s.cart {
		out[k] = v
	}
	return out
}

// AddToCart increments the quantity stored for itemID.
func (s *Session) AddToCart(itemID uint, quantity int) {
	if s.cart == nil {
		s.cart = make(Cart)
	}
	s.cart[Key(itemID)] += quantity
	s.dirty = true
}

// ClearCart removes the cart from the session.
func (s *Session) ClearCart() {
	if s.cart != nil {
		s.cart = nil
		s.dirty = true
	}
}

// AddFlash queues a message for the next rendered page.
func (s *Session) AddFlash(category, message string) {
	s.flashes = append(s.flashes, Flash{Category: category, Message: message})
	s.dirty = true
}

// PopFlashes returns and clears the queued messages.
func (s *Session) PopFlashes() []Flash {
	if len(s.flashes) == 0 {
		return nil
	}
	out := s.flashes
	s.flashes = nil
	s.dirty = true
	return out
}

// Dirty reports whether the session changed since it was loaded.
func (s *Session) Dirty() bool {
	return s.dirty
}

func (s *Session) empty() bool {
	return len(s.cart) == 0 && len(s.flashes) == 0
}
