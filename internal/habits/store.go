// Package habits holds the habit and completion-log state and persists it after every mutation.
package habits

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/storage"
)

const (
	HabitsKey = "habits"
	LogsKey   = "habitLogs"
)

// Store is the in-memory habit state container. It is not safe for concurrent use; the UI
// drives it serially.
type Store struct {
	kv           storage.KV
	now          func() time.Time
	defaultColor string
	habits       []model.Habit
	logs         []model.HabitLog
	lastID       int64
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithDefaultColor sets the color used when Add or Update receive an empty color.
func WithDefaultColor(color string) Option {
	return func(s *Store) {
		if normalized, err := model.NormalizeColor(color); err == nil {
			s.defaultColor = normalized
		}
	}
}

// Load restores both collections from kv. Missing or malformed data falls back to an empty
// collection and never fails the load. Invalid or duplicate habits are dropped, as are logs
// that are malformed or reference a habit that no longer exists.
func Load(ctx context.Context, kv storage.KV, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, errors.New("habits: nil kv")
	}
	s := &Store{
		kv:           kv,
		now:          time.Now,
		defaultColor: model.DefaultColor,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.habits = validHabits(loadCollection[model.Habit](ctx, kv, HabitsKey))
	s.logs = validLogs(loadCollection[model.HabitLog](ctx, kv, LogsKey), s.habits)
	for _, h := range s.habits {
		if n, err := strconv.ParseInt(h.ID, 10, 64); err == nil && n > s.lastID {
			s.lastID = n
		}
	}
	return s, nil
}

func loadCollection[T any](ctx context.Context, kv storage.KV, key string) []T {
	out := make([]T, 0)
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("habits: read %s: %v; starting empty", key, err)
		}
		return out
	}
	if len(raw) == 0 {
		return out
	}
	var decoded []T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		log.Printf("habits: decode %s: %v; starting empty", key, err)
		return out
	}
	return append(out, decoded...)
}

// validHabits drops habits that fail validation or repeat an earlier id.
func validHabits(habits []model.Habit) []model.Habit {
	seen := make(map[string]bool, len(habits))
	out := make([]model.Habit, 0, len(habits))
	for _, h := range habits {
		if err := h.Validate(); err != nil {
			log.Printf("habits: dropping habit %q: %v", h.ID, err)
			continue
		}
		if seen[h.ID] {
			log.Printf("habits: dropping habit %q: duplicate id", h.ID)
			continue
		}
		seen[h.ID] = true
		h.Color, _ = model.NormalizeColor(h.Color)
		out = append(out, h)
	}
	return out
}

// validLogs keeps one well-formed entry per (habit, day) for habits that still exist.
func validLogs(logs []model.HabitLog, habits []model.Habit) []model.HabitLog {
	known := make(map[string]bool, len(habits))
	for _, h := range habits {
		known[h.ID] = true
	}
	seen := make(map[model.HabitLog]bool, len(logs))
	out := make([]model.HabitLog, 0, len(logs))
	orphans := 0
	for _, l := range logs {
		if err := l.Validate(); err != nil {
			log.Printf("habits: dropping log %+v: %v", l, err)
			continue
		}
		if !known[l.HabitID] {
			orphans++
			continue
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	if orphans > 0 {
		log.Printf("habits: pruned %d log entries for unknown habits", orphans)
	}
	return out
}

func (s *Store) Close() error {
	return s.kv.Close()
}

func (s *Store) Habits() []model.Habit {
	return append([]model.Habit(nil), s.habits...)
}

func (s *Store) Logs() []model.HabitLog {
	return append([]model.HabitLog(nil), s.logs...)
}

func (s *Store) Habit(id string) (model.Habit, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.habits[i], true
	}
	return model.Habit{}, false
}

func (s *Store) Today() string {
	return model.FormatDate(s.now())
}

func (s *Store) Add(ctx context.Context, name, color string) (model.Habit, error) {
	h, err := s.validated(name, color)
	if err != nil {
		return model.Habit{}, err
	}
	id := s.nextID()
	h.ID = strconv.FormatInt(id, 10)

	habits := append(s.Habits(), h)
	if err := s.commit(ctx, habits, s.logs); err != nil {
		return model.Habit{}, err
	}
	s.lastID = id
	return h, nil
}

func (s *Store) Update(ctx context.Context, id, name, color string) (model.Habit, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Habit{}, fmt.Errorf("%w: %s", model.ErrNotFound, id)
	}
	h, err := s.validated(name, color)
	if err != nil {
		return model.Habit{}, err
	}
	h.ID = id

	habits := s.Habits()
	habits[i] = h
	if err := s.commit(ctx, habits, s.logs); err != nil {
		return model.Habit{}, err
	}
	return h, nil
}

// Delete removes the habit and every log entry referencing it. Unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	habits := make([]model.Habit, 0, len(s.habits)-1)
	habits = append(habits, s.habits[:i]...)
	habits = append(habits, s.habits[i+1:]...)

	logs := make([]model.HabitLog, 0, len(s.logs))
	for _, l := range s.logs {
		if l.HabitID != id {
			logs = append(logs, l)
		}
	}
	return s.commit(ctx, habits, logs)
}

// Toggle flips completion of habitID on date and returns the new state. Unknown habits are
// rejected with ErrNotFound so no orphaned log is ever recorded.
func (s *Store) Toggle(ctx context.Context, habitID, date string) (bool, error) {
	if s.indexOf(habitID) < 0 {
		return false, fmt.Errorf("%w: %s", model.ErrNotFound, habitID)
	}
	day, err := model.ParseDate(date)
	if err != nil {
		return false, err
	}
	entry := model.HabitLog{HabitID: habitID, Date: model.FormatDate(day)}

	logs := make([]model.HabitLog, 0, len(s.logs)+1)
	found := false
	for _, l := range s.logs {
		if l == entry {
			found = true
			continue
		}
		logs = append(logs, l)
	}
	if !found {
		logs = append(logs, entry)
	}
	if err := s.commit(ctx, s.habits, logs); err != nil {
		return found, err
	}
	return !found, nil
}

func (s *Store) IsCompleted(habitID, date string) bool {
	for _, l := range s.logs {
		if l.HabitID == habitID && l.Date == date {
			return true
		}
	}
	return false
}

func (s *Store) validated(name, color string) (model.Habit, error) {
	trimmed, err := model.NormalizeName(name)
	if err != nil {
		return model.Habit{}, err
	}
	if color == "" {
		color = s.defaultColor
	}
	normalized, err := model.NormalizeColor(color)
	if err != nil {
		return model.Habit{}, err
	}
	return model.Habit{Name: trimmed, Color: normalized}, nil
}

// nextID derives an id from the creation time in milliseconds, bumped past the last issued id.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	for s.indexOf(strconv.FormatInt(id, 10)) >= 0 {
		id++
	}
	return id
}

func (s *Store) indexOf(id string) int {
	for i, h := range s.habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

// commit persists the next state and adopts it only once both writes succeed.
func (s *Store) commit(ctx context.Context, habits []model.Habit, logs []model.HabitLog) error {
	if err := s.put(ctx, HabitsKey, habits); err != nil {
		return err
	}
	if err := s.put(ctx, LogsKey, logs); err != nil {
		return err
	}
	s.habits = habits
	s.logs = logs
	return nil
}

func (s *Store) put(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("habits: encode %s: %w", key, err)
	}
	if err := s.kv.Put(ctx, key, payload); err != nil {
		return fmt.Errorf("habits: persist %s: %w", key, err)
	}
	return nil
}
