package inbox

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/natefinch/atomic"
)

// Kind selects which inbox a submission lands in.
type Kind string

const (
	KindRequest  Kind = "request"
	KindFeedback Kind = "feedback"
)

// Submission limits.
const (
	MaxRequestLen  = 100
	MinFeedbackLen = 10
	MaxFeedbackLen = 500
	HourlyLimit    = 5
	DailyLimit     = 15
)

const defaultSubmitter = "local"

var (
	ErrEmpty       = errors.New("inbox: text is empty")
	ErrTooShort    = errors.New("inbox: text is too short")
	ErrTooLong     = errors.New("inbox: text is too long")
	ErrHourlyLimit = errors.New("inbox: hourly limit reached")
	ErrDailyLimit  = errors.New("inbox: daily limit reached")
	ErrUnknownKind = errors.New("inbox: unknown kind")
)

// Record is one stored submission.
type Record struct {
	Text      string    `json:"text"`
	Submitter string    `json:"submitter"`
	Timestamp time.Time `json:"timestamp"`
}

// Store appends submissions to JSON files in a data directory.
type Store struct {
	dir       string
	submitter string
	now       func() time.Time

	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSubmitter overrides the submitter recorded with every submission.
func WithSubmitter(name string) Option {
	return func(s *Store) {
		if name = strings.TrimSpace(name); name != "" {
			s.submitter = name
		}
	}
}

// New returns a Store writing under dir.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		dir:       dir,
		submitter: currentUser(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file backing kind.
func (s *Store) Path(kind Kind) string {
	return filepath.Join(s.dir, fileName(kind))
}

// Submit validates text, enforces the rate limits and appends a record.
func (s *Store) Submit(kind Kind, text string) (Record, error) {
	if kind != KindRequest && kind != KindFeedback {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	text = strings.TrimSpace(text)
	if err := Validate(kind, text); err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.read(kind)
	now := s.now()
	if err := checkLimits(records, s.submitter, now); err != nil {
		return Record{}, err
	}

	rec := Record{Text: text, Submitter: s.submitter, Timestamp: now.UTC()}
	records = append(records, rec)
	if err := s.write(kind, records); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Records returns every stored submission of kind.
func (s *Store) Records(kind Kind) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(kind)
}

// Validate checks text length for kind. text is expected to be trimmed.
func Validate(kind Kind, text string) error {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return ErrEmpty
	}
	switch kind {
	case KindRequest:
		if n > MaxRequestLen {
			return ErrTooLong
		}
	case KindFeedback:
		if n < MinFeedbackLen {
			return ErrTooShort
		}
		if n > MaxFeedbackLen {
			return ErrTooLong
		}
	}
	return nil
}

func checkLimits(records []Record, submitter string, now time.Time) error {
	var hour, day int
	for _, r := range records {
		if r.Submitter != submitter {
			continue
		}
		age := now.Sub(r.Timestamp)
		if age < 0 || age >= 24*time.Hour {
			continue
		}
		day++
		if age < time.Hour {
			hour++
		}
	}
	if hour >= HourlyLimit {
		return ErrHourlyLimit
	}
	if day >= DailyLimit {
		return ErrDailyLimit
	}
	return nil
}

func (s *Store) read(kind Kind) []Record {
	data, err := os.ReadFile(s.Path(kind))
	if err != nil {
		return nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

func (s *Store) write(kind Kind, records []Record) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create inbox dir: %w", err)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s records: %w", kind, err)
	}
	data = append(data, '\n')
	if err := atomic.WriteFile(s.Path(kind), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s records: %w", kind, err)
	}
	return nil
}

func fileName(kind Kind) string {
	if kind == KindFeedback {
		return "feedbacks.json"
	}
	return "requests.json"
}

func currentUser() string {
	u, err := user.Current()
	if err != nil || strings.TrimSpace(u.Username) == "" {
		return defaultSubmitter
	}
	return u.Username
}
