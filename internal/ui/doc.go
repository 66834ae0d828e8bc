// Package ui provides the terminal interface for reel.
//
// The interface is a Bubble Tea program. The browse view shows a header with
// counts, the search field, a strip of the newest titles and the card list.
// Every change of the search field's value runs one pass of the filter
// controller, which toggles card visibility and keeps the "no results"
// placeholder in the results container in step. The list renders the
// container's children as they are after the pass.
//
// # Key Bindings
//
//   - /: Focus the search field (esc or enter leaves it)
//   - ctrl+u: Clear the search
//   - j/k, g/G: Move the selection
//   - enter: Open the selected title
//   - r/f: Request a title or send feedback
//   - T: Cycle theme
//   - ?: Toggle full help
//   - q or ctrl+c: Quit
package ui
