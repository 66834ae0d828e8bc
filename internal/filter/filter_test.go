package filter

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeInput struct {
	value string
}

func (f *fakeInput) Value() string { return f.value }

// countingContainer records how often the placeholder is touched.
type countingContainer struct {
	present bool
	text    string
	ensures int
	removes int
}

func (c *countingContainer) EnsurePlaceholder(text string) {
	c.ensures++
	if c.present {
		return
	}
	c.present = true
	c.text = text
}

func (c *countingContainer) RemovePlaceholder() {
	c.removes++
	c.present = false
	c.text = ""
}

func animeCards() []*Card {
	return []*Card{
		NewCard("Naruto", "Naruto", "2002"),
		NewCard("Bleach", "Bleach", "2004"),
	}
}

func visibility(cards []*Card) []bool {
	out := make([]bool, len(cards))
	for i, c := range cards {
		out[i] = c.Visible()
	}
	return out
}

func TestController_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		want        []bool
		placeholder bool
	}{
		{"empty query shows everything", "", []bool{true, true}, false},
		{"name match", "naruto", []bool{true, false}, false},
		{"no match shows placeholder", "2010", []bool{false, false}, true},
		{"year match", "2002", []bool{true, false}, false},
		{"uppercase query is lowered", "BLEACH", []bool{false, true}, false},
		{"partial year", "200", []bool{true, true}, false},
		{"unanchored name", "ruto", []bool{true, false}, false},
		{"regex characters are literal", "n.*o", []bool{false, false}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := animeCards()
			results := NewResults(cards)
			input := &fakeInput{value: tt.query}

			ctrl := Activate(input, results.Items(), results)
			res := ctrl.HandleInput()

			if diff := cmp.Diff(tt.want, visibility(cards)); diff != "" {
				t.Fatalf("visibility mismatch (-want +got):\n%s", diff)
			}
			text, ok := results.Placeholder()
			if ok != tt.placeholder {
				t.Fatalf("placeholder present = %v, want %v", ok, tt.placeholder)
			}
			if ok && text != DefaultPlaceholder {
				t.Fatalf("placeholder text = %q, want %q", text, DefaultPlaceholder)
			}
			if res.Empty() != tt.placeholder {
				t.Fatalf("Result.Empty() = %v, want %v", res.Empty(), tt.placeholder)
			}
			if res.Total != len(cards) {
				t.Fatalf("Result.Total = %d, want %d", res.Total, len(cards))
			}
		})
	}
}

func TestController_ClearingQueryRemovesPlaceholder(t *testing.T) {
	cards := animeCards()
	results := NewResults(cards)
	input := &fakeInput{value: "2010"}

	ctrl := Activate(input, results.Items(), results)
	ctrl.HandleInput()
	if _, ok := results.Placeholder(); !ok {
		t.Fatal("placeholder missing after query with no matches")
	}

	input.value = ""
	res := ctrl.HandleInput()

	if _, ok := results.Placeholder(); ok {
		t.Fatal("placeholder still present after clearing the query")
	}
	if diff := cmp.Diff([]bool{true, true}, visibility(cards)); diff != "" {
		t.Fatalf("visibility mismatch (-want +got):\n%s", diff)
	}
	if res.Visible != 2 {
		t.Fatalf("Visible = %d, want 2", res.Visible)
	}
}

func TestActivate_NilInputIsNoop(t *testing.T) {
	cards := animeCards()
	results := &countingContainer{}

	ctrl := Activate(nil, []ItemView{cards[0], cards[1]}, results)
	if ctrl != nil {
		t.Fatalf("Activate(nil, ...) = %#v, want nil", ctrl)
	}

	// Every method must tolerate the nil controller.
	res := ctrl.HandleInput()
	if res != (Result{}) {
		t.Fatalf("HandleInput on nil controller = %#v, want zero", res)
	}
	if ctrl.Passes() != 0 || ctrl.Last() != (Result{}) {
		t.Fatal("nil controller reported state")
	}
	if results.ensures != 0 || results.removes != 0 {
		t.Fatalf("placeholder touched: ensures=%d removes=%d", results.ensures, results.removes)
	}
	if diff := cmp.Diff([]bool{true, true}, visibility(cards)); diff != "" {
		t.Fatalf("visibility changed (-want +got):\n%s", diff)
	}
}

func TestController_PlaceholderIsNeverDuplicated(t *testing.T) {
	cards := animeCards()
	results := NewResults(cards)
	input := &fakeInput{value: "zzz"}
	ctrl := Activate(input, results.Items(), results)

	for _, q := range []string{"zzz", "zzzz", "yyy"} {
		input.value = q
		ctrl.HandleInput()
	}

	placeholders := 0
	for _, ch := range results.Children() {
		if ch.IsPlaceholder() {
			placeholders++
		}
	}
	if placeholders != 1 {
		t.Fatalf("placeholders = %d, want 1", placeholders)
	}
}

func TestController_PlaceholderIsLastChild(t *testing.T) {
	cards := animeCards()
	results := NewResults(cards)
	ctrl := Activate(&fakeInput{value: "1999"}, results.Items(), results)
	ctrl.HandleInput()

	children := results.Children()
	if len(children) != 1 || !children[0].IsPlaceholder() {
		t.Fatalf("children = %#v, want only the placeholder", children)
	}

	// Placeholder follows the visible cards once something matches again.
	results.EnsurePlaceholder("ignored")
	children = results.Children()
	if !children[len(children)-1].IsPlaceholder() {
		t.Fatalf("last child = %#v, want placeholder", children[len(children)-1])
	}
}

func TestController_Idempotent(t *testing.T) {
	queries := []string{"", "a", "naruto", "2004", "2010", "ble"}
	for _, q := range queries {
		t.Run(fmt.Sprintf("q=%q", q), func(t *testing.T) {
			cards := animeCards()
			results := NewResults(cards)
			ctrl := Activate(&fakeInput{value: q}, results.Items(), results)

			first := ctrl.HandleInput()
			firstVis := visibility(cards)
			_, firstPlaceholder := results.Placeholder()

			second := ctrl.HandleInput()
			_, secondPlaceholder := results.Placeholder()

			if first != second {
				t.Fatalf("results differ: %#v vs %#v", first, second)
			}
			if diff := cmp.Diff(firstVis, visibility(cards)); diff != "" {
				t.Fatalf("visibility differs (-first +second):\n%s", diff)
			}
			if firstPlaceholder != secondPlaceholder {
				t.Fatalf("placeholder differs: %v vs %v", firstPlaceholder, secondPlaceholder)
			}
			if ctrl.Passes() != 2 {
				t.Fatalf("Passes() = %d, want 2", ctrl.Passes())
			}
		})
	}
}

func TestController_PlaceholderIffNothingVisible(t *testing.T) {
	cards := []*Card{
		NewCard("a", "Cowboy Bebop", "1998"),
		NewCard("b", "Trigun", "1998"),
		NewCard("c", "Mushishi", "2005"),
		NewCard("d", "", ""),
	}
	results := NewResults(cards)
	input := &fakeInput{}
	ctrl := Activate(input, results.Items(), results)

	// Each pass recomputes from scratch, including when the query shrinks.
	for _, q := range []string{"1", "19", "199", "1998", "bebop", "x", "", "tri", "2005", "mushishi!"} {
		input.value = q
		res := ctrl.HandleInput()

		visible := len(results.Visible())
		if visible != res.Visible {
			t.Fatalf("q=%q: Visible() = %d, Result.Visible = %d", q, visible, res.Visible)
		}
		_, present := results.Placeholder()
		if present != (visible == 0) {
			t.Fatalf("q=%q: placeholder=%v with %d visible", q, present, visible)
		}
		for _, c := range cards {
			want := q == "" || Matches(q, c.Name(), c.Year())
			if c.Visible() != want {
				t.Fatalf("q=%q card %q visible=%v want %v", q, c.Key, c.Visible(), want)
			}
		}
	}
}

func TestController_CapturesItemsOnce(t *testing.T) {
	cards := animeCards()
	results := NewResults(cards)
	input := &fakeInput{value: "x"}
	ctrl := Activate(input, results.Items(), results)

	late := NewCard("Monster", "Monster", "2004")
	results.Append(late)

	res := ctrl.HandleInput()
	if res.Total != 2 {
		t.Fatalf("Total = %d, want 2 (late card must not be captured)", res.Total)
	}
	if !late.Visible() {
		t.Fatal("late card visibility was changed by the controller")
	}
}

func TestController_MissingAttributesAreEmpty(t *testing.T) {
	var missing *Card
	cards := []ItemView{missing, NewCard("x", "", ""), nil, NewCard("y", "Akira", "1988")}
	results := &countingContainer{}
	input := &fakeInput{value: "akira"}

	ctrl := Activate(input, cards, results)
	res := ctrl.HandleInput()

	if res.Total != 3 {
		t.Fatalf("Total = %d, want 3 (nil interface entries are dropped)", res.Total)
	}
	if res.Visible != 1 {
		t.Fatalf("Visible = %d, want 1", res.Visible)
	}

	input.value = ""
	if res := ctrl.HandleInput(); res.Visible != 3 {
		t.Fatalf("Visible with empty query = %d, want 3", res.Visible)
	}
}

func TestController_YearIsLoweredAtReadTime(t *testing.T) {
	card := NewCard("k", "Ghost in the Shell", "1995 TV SPECIAL")
	results := NewResults([]*Card{card})
	ctrl := Activate(&fakeInput{value: "Special"}, results.Items(), results)

	if res := ctrl.HandleInput(); res.Visible != 1 {
		t.Fatalf("Visible = %d, want 1", res.Visible)
	}
	if card.Year() != "1995 TV SPECIAL" {
		t.Fatalf("Year() = %q, raw year must be preserved", card.Year())
	}
}

func TestWithPlaceholder(t *testing.T) {
	results := NewResults(animeCards())
	ctrl := Activate(&fakeInput{value: "none"}, results.Items(), results, WithPlaceholder("Keine Ergebnisse."))
	ctrl.HandleInput()

	text, ok := results.Placeholder()
	if !ok || text != "Keine Ergebnisse." {
		t.Fatalf("Placeholder() = %q, %v; want %q, true", text, ok, "Keine Ergebnisse.")
	}

	results = NewResults(animeCards())
	ctrl = Activate(&fakeInput{value: "none"}, results.Items(), results, WithPlaceholder("   "))
	ctrl.HandleInput()
	if text, _ := results.Placeholder(); text != DefaultPlaceholder {
		t.Fatalf("blank override: Placeholder() = %q, want %q", text, DefaultPlaceholder)
	}
}

func TestController_LastBeforeFirstPass(t *testing.T) {
	results := NewResults(animeCards())
	ctrl := Activate(&fakeInput{}, results.Items(), results)

	last := ctrl.Last()
	if last.Visible != 2 || last.Total != 2 {
		t.Fatalf("Last() = %#v, want all cards visible", last)
	}
	if _, ok := results.Placeholder(); ok {
		t.Fatal("activation alone must not create a placeholder")
	}
}

func TestController_NilContainer(t *testing.T) {
	cards := animeCards()
	ctrl := Activate(&fakeInput{value: "nothing"}, []ItemView{cards[0], cards[1]}, nil)
	if res := ctrl.HandleInput(); res.Visible != 0 {
		t.Fatalf("Visible = %d, want 0", res.Visible)
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		q, name, year string
		want          bool
	}{
		{"", "", "", true},
		{"", "anything", "2000", true},
		{"nar", "naruto", "2002", true},
		{"02", "naruto", "2002", true},
		{"naruto shippuden", "naruto", "2002", false},
		{"x", "", "", false},
	}
	for _, tt := range tests {
		if got := Matches(tt.q, tt.name, tt.year); got != tt.want {
			t.Errorf("Matches(%q, %q, %q) = %v, want %v", tt.q, tt.name, tt.year, got, tt.want)
		}
	}
}
