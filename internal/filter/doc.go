// Package filter implements the live card filter behind reel's search field.
//
// # Overview
//
// A Controller is bound once to a text input, a fixed collection of cards and
// the results container that holds them. Every change of the input value
// triggers one synchronous pass:
//
//  1. Lowercase the input value into the query q.
//  2. For every card, in order, show it when q is empty or when its name or
//     year contains q as a literal substring; hide it otherwise.
//  3. Reconcile the "no results" placeholder: present iff no card is visible.
//
// There is no debouncing and no incremental index. Each pass recomputes
// every card from scratch, so a pass is deterministic and idempotent.
//
// # Activation
//
//	results := filter.NewResults(cards)
//	ctrl := filter.Activate(input, results.Items(), results,
//		filter.WithPlaceholder(i18n.T("empty.no_results")))
//
// Activate returns nil when input is nil. A nil *Controller accepts every
// method and does nothing, so screens without a search field need no
// special casing.
//
// # Rendering
//
// The package does not draw anything. Card keeps visibility as a flag and
// Results.Children lists what a renderer should draw, cards first and the
// placeholder last.
package filter
