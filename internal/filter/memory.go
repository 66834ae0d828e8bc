package filter

import "strings"

// Card is an in-memory ItemView. Visibility is a flag that a renderer reads
// instead of a display style.
type Card struct {
	// Key identifies the card in the upstream collection (the catalog title).
	Key string

	name    string
	year    string
	visible bool
}

// NewCard builds a visible card. The name is lowercased here, once, so the
// filter pass can compare it as-is.
func NewCard(key, name, year string) *Card {
	return &Card{
		Key:     key,
		name:    strings.ToLower(name),
		year:    year,
		visible: true,
	}
}

// Name returns the lowercased name.
func (c *Card) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Year returns the raw year attribute.
func (c *Card) Year() string {
	if c == nil {
		return ""
	}
	return c.year
}

// SetVisible implements ItemView.
func (c *Card) SetVisible(visible bool) {
	if c == nil {
		return
	}
	c.visible = visible
}

// Visible reports the current visibility flag.
func (c *Card) Visible() bool {
	return c != nil && c.visible
}

// Child is one rendered element of a Results container: either a card or,
// when Card is nil, the placeholder.
type Child struct {
	Card        *Card
	Placeholder string
}

// IsPlaceholder reports whether the child is the "no results" element.
func (ch Child) IsPlaceholder() bool {
	return ch.Card == nil
}

// Results is an in-memory results container. It keeps the cards in their
// original order and at most one trailing placeholder. It is not safe for
// concurrent use; the UI event loop owns it.
type Results struct {
	cards       []*Card
	placeholder string
	hasEmpty    bool
}

// NewResults wraps cards, preserving their order.
func NewResults(cards []*Card) *Results {
	dup := make([]*Card, len(cards))
	copy(dup, cards)
	return &Results{cards: dup}
}

// Cards returns the cards in document order.
func (r *Results) Cards() []*Card {
	dup := make([]*Card, len(r.cards))
	copy(dup, r.cards)
	return dup
}

// Items returns the cards as ItemViews for Activate.
func (r *Results) Items() []ItemView {
	items := make([]ItemView, 0, len(r.cards))
	for _, c := range r.cards {
		items = append(items, c)
	}
	return items
}

// Append adds a card after activation. Controllers activated earlier do not
// see it.
func (r *Results) Append(card *Card) {
	r.cards = append(r.cards, card)
}

// EnsurePlaceholder creates the placeholder unless one already exists.
func (r *Results) EnsurePlaceholder(text string) {
	if r.hasEmpty {
		return
	}
	r.placeholder = text
	r.hasEmpty = true
}

// RemovePlaceholder drops the placeholder if present.
func (r *Results) RemovePlaceholder() {
	r.placeholder = ""
	r.hasEmpty = false
}

// Placeholder returns the placeholder text and whether it is present.
func (r *Results) Placeholder() (string, bool) {
	return r.placeholder, r.hasEmpty
}

// Visible returns the visible cards in order.
func (r *Results) Visible() []*Card {
	var out []*Card
	for _, c := range r.cards {
		if c.Visible() {
			out = append(out, c)
		}
	}
	return out
}

// Children lists what a renderer draws: visible cards in order followed by
// the placeholder when present.
func (r *Results) Children() []Child {
	out := make([]Child, 0, len(r.cards)+1)
	for _, c := range r.cards {
		if c.Visible() {
			out = append(out, Child{Card: c})
		}
	}
	if r.hasEmpty {
		out = append(out, Child{Placeholder: r.placeholder})
	}
	return out
}
