// Package catalog loads the anime catalog that reel renders as cards.
//
// # Document format
//
// The catalog is a JSON object keyed by title:
//
//	{
//	  "Naruto": {
//	    "year": 2002,
//	    "description": "A ninja story.",
//	    "content": {"Episode 1": "https://example.com/embed/1"}
//	  }
//	}
//
// year may be a number or a string. content keeps its key order, which is
// the episode order shown in the detail view. Comments and trailing commas
// are tolerated (JSONC). A value that is not an object still produces an
// entry, with empty attributes.
//
// # Sources
//
// Open accepts a filesystem path or an http(s) URL. Missing local files are
// an empty catalog, not an error; remote sources must answer with a 2xx/3xx
// status.
//
// # Ordering
//
// Entries orders titles by lowercased name. Latest orders by year, newest
// first, with non-numeric years treated as 0.
package catalog
