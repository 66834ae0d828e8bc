package filter

import "strings"

// DefaultPlaceholder is the text shown when a pass leaves no card visible.
const DefaultPlaceholder = "No results."

// Input is the text field a Controller reads its query from.
type Input interface {
	Value() string
}

// ItemView is a single filterable card. Name is expected to be lowercased
// when the card is built; Year is lowercased on every pass. Implementations
// return "" for attributes they do not carry.
type ItemView interface {
	Name() string
	Year() string
	SetVisible(visible bool)
}

// Container holds the cards and the optional "no results" placeholder.
// Both methods must be idempotent.
type Container interface {
	EnsurePlaceholder(text string)
	RemovePlaceholder()
}

// Option customizes a Controller at activation time.
type Option func(*Controller)

// WithPlaceholder overrides the placeholder text. Empty text keeps the default.
func WithPlaceholder(text string) Option {
	return func(c *Controller) {
		if strings.TrimSpace(text) != "" {
			c.placeholder = text
		}
	}
}

// Result summarizes one filter pass.
type Result struct {
	Query   string
	Visible int
	Total   int
}

// Empty reports whether the pass left no card visible.
func (r Result) Empty() bool {
	return r.Visible == 0
}

// Controller recomputes card visibility from the input on every change.
// A nil *Controller is valid and does nothing.
type Controller struct {
	input       Input
	items       []ItemView
	results     Container
	placeholder string
	last        Result
	passes      int
}

// Activate binds a controller to input, the card collection and the results
// container. The collection is captured once; cards added to the page later
// are never seen. A nil input yields a nil controller, which is the defined
// behavior for screens rendered without a search field.
func Activate(input Input, items []ItemView, results Container, opts ...Option) *Controller {
	if input == nil {
		return nil
	}

	captured := make([]ItemView, 0, len(items))
	for _, item := range items {
		if item != nil {
			captured = append(captured, item)
		}
	}

	c := &Controller{
		input:       input,
		items:       captured,
		results:     results,
		placeholder: DefaultPlaceholder,
		last:        Result{Visible: len(captured), Total: len(captured)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HandleInput runs one synchronous filter pass over every captured card and
// reconciles the placeholder. Call it for every value change of the input.
func (c *Controller) HandleInput() Result {
	if c == nil {
		return Result{}
	}

	q := strings.ToLower(c.input.Value())
	res := Result{Query: q, Total: len(c.items)}

	for _, item := range c.items {
		if Matches(q, item.Name(), strings.ToLower(item.Year())) {
			item.SetVisible(true)
			res.Visible++
			continue
		}
		item.SetVisible(false)
	}

	c.reconcile(res.Visible > 0)
	c.last = res
	c.passes++
	return res
}

func (c *Controller) reconcile(anyVisible bool) {
	if c.results == nil {
		return
	}
	if anyVisible {
		c.results.RemovePlaceholder()
		return
	}
	c.results.EnsurePlaceholder(c.placeholder)
}

// Last returns the outcome of the most recent pass. Before the first pass
// every card counts as visible.
func (c *Controller) Last() Result {
	if c == nil {
		return Result{}
	}
	return c.last
}

// Passes returns how many passes have run.
func (c *Controller) Passes() int {
	if c == nil {
		return 0
	}
	return c.passes
}

// Matches reports whether a card with the given lowercased name and year is
// visible for query q. Matching is a literal, unanchored substring test; an
// empty query matches everything.
func Matches(q, name, year string) bool {
	return q == "" || strings.Contains(name, q) || strings.Contains(year, q)
}
