package moneytracker

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/moneytracker/date"
	"github.com/google/uuid"
)

// Mood is an optional label attached to a reflection.
type Mood string

const (
	Happy     Mood = "Happy"
	Sad       Mood = "Sad"
	Angry     Mood = "Angry"
	Relaxed   Mood = "Relaxed"
	Anxious   Mood = "Anxious"
	Motivated Mood = "Motivated"
	Creative  Mood = "Creative"
	Tired     Mood = "Tired"
)

// Moods lists the known moods in display order.
var Moods = []Mood{Happy, Sad, Angry, Relaxed, Anxious, Motivated, Creative, Tired}

var moodEmoji = map[Mood]string{
	Happy:     "😄",
	Sad:       "😢",
	Angry:     "😠",
	Relaxed:   "😌",
	Anxious:   "😰",
	Motivated: "💪",
	Creative:  "🎨",
	Tired:     "😴",
}

// Emoji returns the pictogram of m, "" for no mood.
func (m Mood) Emoji() string { return moodEmoji[m] }

// moodAliases maps Spanish labels found in older data.
var moodAliases = map[string]Mood{
	"feliz":    Happy,
	"triste":   Sad,
	"enojado":  Angry,
	"relajado": Relaxed,
	"ansioso":  Anxious,
	"motivado": Motivated,
	"creativo": Creative,
	"cansado":  Tired,
}

// ParseMood parses a mood label, case insensitive. The empty string is no mood.
func ParseMood(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, m := range Moods {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	if m, ok := moodAliases[strings.ToLower(s)]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMood, s)
}

// Reflection is a free text journal entry.
//
// Timestamp is zero when the stored time is not RFC 3339, RawTimestamp then
// holds the stored text, which is written back unchanged.
type Reflection struct {
	ID           string
	Text         string
	Timestamp    time.Time
	RawTimestamp string
	Mood         Mood
}

// NewReflection creates a reflection written at now.
func NewReflection(text string, mood Mood, now time.Time) (Reflection, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reflection{}, ErrEmptyReflection
	}
	return Reflection{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: now.Truncate(time.Second),
		Mood:      mood,
	}, nil
}

// Day returns the local day the reflection was written.
func (r Reflection) Day() date.Date { return date.Of(r.Timestamp.Local()) }

// MarshalJSON writes the reflection with a stable field order.
func (r Reflection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("text", r.Text)
	if r.Timestamp.IsZero() && r.RawTimestamp != "" {
		w.Append("timestamp", r.RawTimestamp)
	} else {
		w.Append("timestamp", r.Timestamp)
	}
	w.Optional("mood", r.Mood)
	return w.MarshalJSON()
}

// UnmarshalJSON rejects blank entries and normalizes the mood, unknown
// moods are dropped. Entries of the former web app ("texto", "fecha" and
// numeric ids) are read too.
func (r *Reflection) UnmarshalJSON(b []byte) error {
	var jr struct {
		ID        recordID `json:"id"`
		Text      string   `json:"text"`
		Timestamp string   `json:"timestamp"`
		Mood      string   `json:"mood"`
		Texto     string   `json:"texto"`
		Fecha     string   `json:"fecha"`
	}
	if err := json.Unmarshal(b, &jr); err != nil {
		return err
	}
	if jr.Text == "" {
		jr.Text = jr.Texto
	}
	if strings.TrimSpace(jr.Text) == "" {
		return ErrEmptyReflection
	}
	if jr.Timestamp == "" {
		jr.Timestamp = jr.Fecha
	}
	if jr.ID == "" {
		jr.ID = recordID(uuid.NewString())
	}
	ref := Reflection{ID: string(jr.ID), Text: jr.Text}
	if ts, err := time.Parse(time.RFC3339, jr.Timestamp); err == nil {
		ref.Timestamp = ts
	} else {
		ref.RawTimestamp = jr.Timestamp
	}
	if mood, err := ParseMood(jr.Mood); err == nil {
		ref.Mood = mood
	}
	*r = ref
	return nil
}
