// Package inbox stores title requests and feedback submitted from the UI.
//
// Each kind lives in its own JSON list in the data directory and is rewritten
// atomically on every submission. Submissions are rate limited per submitter.
package inbox
