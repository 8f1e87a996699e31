package alert

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindDanger  Kind = "danger"
)

type Alert struct {
	ID         string `json:"id"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message"`
	Kind       Kind   `json:"kind"`
	DurationMs int64  `json:"durationMs"`
}

// Timer is the part of *time.Timer the store needs.
type Timer interface {
	Stop() bool
}

// Clock schedules expiry callbacks. Tests swap in a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

type entry struct {
	serial uint64
	alert  Alert
	timer  Timer
}

// Service is a visitor's toast queue. Alerts leave on their own after their
// duration or earlier through Hide.
type Service struct {
	clock    Clock
	duration time.Duration

	mu      sync.Mutex
	entries []entry
	serial  uint64
}

type Option func(*Service)

func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithDefaultDuration sets the lifetime of alerts shown without one.
func WithDefaultDuration(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.duration = d
		}
	}
}

func New(opts ...Option) *Service {
	s := &Service{clock: realClock{}, duration: 3 * time.Second}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Show queues a and returns it with its id, kind and duration filled in.
// A caller-supplied id is kept as is; otherwise a time-ordered uuid is used.
func (s *Service) Show(a Alert) Alert {
	if strings.TrimSpace(a.ID) == "" {
		a.ID = uuid.Must(uuid.NewV7()).String()
	}
	if a.Kind == "" {
		a.Kind = KindInfo
	}
	d := time.Duration(a.DurationMs) * time.Millisecond
	if d <= 0 {
		d = s.duration
		a.DurationMs = d.Milliseconds()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.serial++
	serial := s.serial
	timer := s.clock.AfterFunc(d, func() { s.expire(serial) })
	s.entries = append(s.entries, entry{serial: serial, alert: a, timer: timer})
	return a
}

// Hide removes every visible alert with id. Unknown ids are ignored.
func (s *Service) Hide(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.alert.ID == id {
			e.timer.Stop()
			continue
		}
		kept = append(kept, e)
	}
	clear(s.entries[len(kept):])
	s.entries = kept
}

func (s *Service) expire(serial uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.serial == serial {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// List returns the visible alerts, oldest first.
func (s *Service) List() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Alert, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.alert
	}
	return out
}

// Close stops every pending timer; the workspace calls it on eviction.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		e.timer.Stop()
	}
	s.entries = nil
}

// Success and Error are shorthands used by handlers.
func (s *Service) Success(title, message string) Alert {
	return s.Show(Alert{Title: title, Message: message, Kind: KindSuccess})
}

func (s *Service) Error(title, message string) Alert {
	return s.Show(Alert{Title: title, Message: message, Kind: KindDanger})
}
