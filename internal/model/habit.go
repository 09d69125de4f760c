package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	DateLayout   = "2006-01-02"
	DefaultColor = "#3b82f6"
)

var (
	ErrNotFound   = errors.New("model: habit not found")
	ErrValidation = errors.New("model: validation failed")
)

// ValidationError reports a rejected field. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model: invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type Habit struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// HabitLog records that a habit was completed on a day. Its existence is the completion signal.
type HabitLog struct {
	HabitID string `json:"habitId"`
	Date    string `json:"date"`
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return &ValidationError{Field: "id", Reason: "required"}
	}
	if strings.TrimSpace(h.Name) == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if _, err := NormalizeColor(h.Color); err != nil {
		return err
	}
	return nil
}

func (l HabitLog) Validate() error {
	if strings.TrimSpace(l.HabitID) == "" {
		return &ValidationError{Field: "habitId", Reason: "required"}
	}
	if _, err := ParseDate(l.Date); err != nil {
		return err
	}
	return nil
}

// NormalizeName trims surrounding whitespace and rejects empty names.
func NormalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", &ValidationError{Field: "name", Reason: "required"}
	}
	return trimmed, nil
}

// NormalizeColor accepts #rgb and #rrggbb and returns the lower-case #rrggbb form.
func NormalizeColor(color string) (string, error) {
	raw := strings.TrimSpace(color)
	if raw == "" {
		return "", &ValidationError{Field: "color", Reason: "required"}
	}
	if !strings.HasPrefix(raw, "#") {
		raw = "#" + raw
	}
	c, err := colorful.Hex(raw)
	if err != nil || (len(raw) != 4 && len(raw) != 7) {
		return "", &ValidationError{Field: "color", Reason: fmt.Sprintf("%q is not a hex color", color)}
	}
	return c.Hex(), nil
}

func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not YYYY-MM-DD", date)}
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
