package inbox

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	return New(t.TempDir(), WithClock(clock.Now), WithSubmitter("alice")), clock
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		text string
		want error
	}{
		{"request ok", KindRequest, "Naruto", nil},
		{"request empty", KindRequest, "", ErrEmpty},
		{"request at limit", KindRequest, strings.Repeat("a", MaxRequestLen), nil},
		{"request too long", KindRequest, strings.Repeat("a", MaxRequestLen+1), ErrTooLong},
		{"feedback too short", KindFeedback, "too short", ErrTooShort},
		{"feedback at min", KindFeedback, strings.Repeat("b", MinFeedbackLen), nil},
		{"feedback too long", KindFeedback, strings.Repeat("b", MaxFeedbackLen+1), ErrTooLong},
		{"feedback empty", KindFeedback, "", ErrEmpty},
		{"runes not bytes", KindRequest, strings.Repeat("é", MaxRequestLen), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.kind, tt.text); !errors.Is(err, tt.want) {
				t.Fatalf("Validate(%s, %q) = %v, want %v", tt.kind, tt.text, err, tt.want)
			}
		})
	}
}

func TestSubmit_AppendsTrimmedRecord(t *testing.T) {
	s, clock := newTestStore(t)

	rec, err := s.Submit(KindRequest, "  Cowboy Bebop  ")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Text != "Cowboy Bebop" || rec.Submitter != "alice" || !rec.Timestamp.Equal(clock.t) {
		t.Fatalf("unexpected record: %+v", rec)
	}

	got := s.Records(KindRequest)
	if len(got) != 1 || got[0].Text != "Cowboy Bebop" {
		t.Fatalf("Records = %+v", got)
	}
	if len(s.Records(KindFeedback)) != 0 {
		t.Fatal("feedback inbox should be untouched")
	}
	if _, err := os.Stat(s.Path(KindRequest)); err != nil {
		t.Fatalf("requests.json missing: %v", err)
	}
}

func TestSubmit_WhitespaceOnlyIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Submit(KindRequest, "   \t"); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
	if _, err := os.Stat(s.Path(KindRequest)); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written on validation failure, stat err = %v", err)
	}
}

func TestSubmit_UnknownKind(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Submit(Kind("spam"), "hello there"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
}

func TestSubmit_HourlyLimit(t *testing.T) {
	s, clock := newTestStore(t)

	for i := 0; i < HourlyLimit; i++ {
		if _, err := s.Submit(KindRequest, "title"); err != nil {
			t.Fatalf("submission %d: %v", i, err)
		}
		clock.Advance(time.Minute)
	}
	if _, err := s.Submit(KindRequest, "title"); !errors.Is(err, ErrHourlyLimit) {
		t.Fatalf("err = %v, want ErrHourlyLimit", err)
	}

	// Limits are per kind.
	if _, err := s.Submit(KindFeedback, "the player works great"); err != nil {
		t.Fatalf("feedback should not share the request limit: %v", err)
	}

	clock.Advance(time.Hour)
	if _, err := s.Submit(KindRequest, "title"); err != nil {
		t.Fatalf("hourly window should have passed: %v", err)
	}
}

func TestSubmit_DailyLimit(t *testing.T) {
	s, clock := newTestStore(t)

	for i := 0; i < DailyLimit; i++ {
		if _, err := s.Submit(KindRequest, "title"); err != nil {
			t.Fatalf("submission %d: %v", i, err)
		}
		clock.Advance(61 * time.Minute)
	}
	if _, err := s.Submit(KindRequest, "title"); !errors.Is(err, ErrDailyLimit) {
		t.Fatalf("err = %v, want ErrDailyLimit", err)
	}

	clock.Advance(24 * time.Hour)
	if _, err := s.Submit(KindRequest, "title"); err != nil {
		t.Fatalf("daily window should have passed: %v", err)
	}
}

func TestSubmit_LimitsArePerSubmitter(t *testing.T) {
	dir := t.TempDir()
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	alice := New(dir, WithClock(clock.Now), WithSubmitter("alice"))
	bob := New(dir, WithClock(clock.Now), WithSubmitter("bob"))

	for i := 0; i < HourlyLimit; i++ {
		if _, err := alice.Submit(KindRequest, "title"); err != nil {
			t.Fatalf("alice %d: %v", i, err)
		}
	}
	if _, err := bob.Submit(KindRequest, "title"); err != nil {
		t.Fatalf("bob should have his own budget: %v", err)
	}
	if n := len(bob.Records(KindRequest)); n != HourlyLimit+1 {
		t.Fatalf("shared file has %d records, want %d", n, HourlyLimit+1)
	}
}

func TestSubmit_CorruptFileCountsAsEmpty(t *testing.T) {
	for name, content := range map[string]string{
		"garbage":    "not json",
		"non-list":   `{"text":"x"}`,
		"empty file": "",
	} {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestStore(t)
			if err := os.WriteFile(s.Path(KindFeedback), []byte(content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if _, err := s.Submit(KindFeedback, "subtitles are out of sync"); err != nil {
				t.Fatalf("Submit: %v", err)
			}
			if got := s.Records(KindFeedback); len(got) != 1 {
				t.Fatalf("Records = %+v, want one record", got)
			}
		})
	}
}

func TestSubmit_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir, WithSubmitter("alice"))
	if _, err := s.Submit(KindRequest, "Trigun"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if filepath.Base(s.Path(KindRequest)) != "requests.json" {
		t.Fatalf("unexpected path %q", s.Path(KindRequest))
	}
	if filepath.Base(s.Path(KindFeedback)) != "feedbacks.json" {
		t.Fatalf("unexpected path %q", s.Path(KindFeedback))
	}
}

func TestNew_DefaultSubmitterIsNotBlank(t *testing.T) {
	s := New(t.TempDir())
	if strings.TrimSpace(s.submitter) == "" {
		t.Fatal("submitter should fall back to a non-empty name")
	}
}
