package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Episode is one playable entry of a title.
type Episode struct {
	Label string
	URL   string
}

// Entry is a single catalog title.
type Entry struct {
	Name        string
	Year        string
	Description string
	Episodes    []Episode
}

// SearchName returns the lowercased name the filter compares against.
func (e Entry) SearchName() string {
	return strings.ToLower(e.Name)
}

// YearNumber returns the year as an integer, or 0 when it is not numeric.
func (e Entry) YearNumber() int {
	n, err := strconv.Atoi(strings.TrimSpace(e.Year))
	if err != nil {
		return 0
	}
	return n
}

// Episode resolves the requested episode label. Unknown or empty labels fall
// back to the first episode. ok is false when the entry has no episodes.
func (e Entry) Episode(label string) (Episode, bool) {
	if len(e.Episodes) == 0 {
		return Episode{}, false
	}
	for _, ep := range e.Episodes {
		if ep.Label == label {
			return ep, true
		}
	}
	return e.Episodes[0], true
}

// Catalog is an immutable set of entries keyed by title.
type Catalog struct {
	entries map[string]Entry
}

// New builds a catalog from entries. Later duplicates replace earlier ones.
func New(entries ...Entry) Catalog {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return Catalog{entries: m}
}

// Len returns the number of titles.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns the entry for an exact title.
func (c Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Entries returns every title ordered by lowercased name.
func (c Catalog) Entries() []Entry {
	out := c.all()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].SearchName(), out[j].SearchName()
		if a != b {
			return a < b
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Latest returns up to n titles, newest year first, then by lowercased name.
func (c Catalog) Latest(n int) []Entry {
	if n <= 0 {
		return nil
	}
	out := c.all()
	sort.SliceStable(out, func(i, j int) bool {
		yi, yj := out[i].YearNumber(), out[j].YearNumber()
		if yi != yj {
			return yi > yj
		}
		a, b := out[i].SearchName(), out[j].SearchName()
		if a != b {
			return a < b
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func (c Catalog) all() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	return out
}

// rawEntry mirrors one value of the catalog document.
type rawEntry struct {
	Year        json.RawMessage `json:"year"`
	Description json.RawMessage `json:"description"`
	Content     json.RawMessage `json:"content"`
}

// decode parses a standardized JSON catalog document.
func decode(data []byte) (Catalog, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return New(), nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for name, value := range raw {
		// A malformed entry still becomes a card, with empty attributes.
		var r rawEntry
		_ = json.Unmarshal(value, &r)

		episodes, _ := decodeEpisodes(r.Content)
		entries = append(entries, Entry{
			Name:        name,
			Year:        scalarString(r.Year),
			Description: scalarString(r.Description),
			Episodes:    episodes,
		})
	}
	return New(entries...), nil
}

// scalarString renders a JSON scalar as text. Strings are unquoted, numbers
// keep their literal form, everything else (null, objects, arrays) is "".
func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(raw)
	case 't', 'f':
		return string(raw)
	default:
		return ""
	}
}

// decodeEpisodes reads the content object preserving key order, which a
// map would lose.
func decodeEpisodes(raw json.RawMessage) ([]Episode, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("content must be an object")
	}

	var episodes []Episode
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		label, _ := keyTok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		episodes = append(episodes, Episode{Label: label, URL: scalarString(value)})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return episodes, nil
}
