// Package hotkey registers key chords and delivers their presses as events
// that can be drained without blocking.
package hotkey

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"
)

// Modifier is a chord modifier key.
type Modifier int

const (
	ModAlt Modifier = iota
	ModCtrl
	ModShift
	ModSuper
)

func (m Modifier) String() string {
	switch m {
	case ModAlt:
		return "Alt"
	case ModCtrl:
		return "Ctrl"
	case ModShift:
		return "Shift"
	case ModSuper:
		return "Super"
	default:
		return "?"
	}
}

// Chord is a key plus modifiers recognised as one hotkey.
type Chord struct {
	Modifiers []Modifier
	Key       rune // upper-case letter or digit
}

// DefaultChord is Alt+T.
var DefaultChord = Chord{Modifiers: []Modifier{ModAlt}, Key: 'T'}

func (c Chord) String() string {
	parts := make([]string, 0, len(c.Modifiers)+1)
	for _, m := range c.Modifiers {
		parts = append(parts, m.String())
	}
	parts = append(parts, string(c.Key))
	return strings.Join(parts, "+")
}

// Equal reports whether both chords have the same key and modifier set.
func (c Chord) Equal(o Chord) bool {
	if c.Key != o.Key || len(c.Modifiers) != len(o.Modifiers) {
		return false
	}
	var a, b uint
	for _, m := range c.Modifiers {
		a |= 1 << uint(m)
	}
	for _, m := range o.Modifiers {
		b |= 1 << uint(m)
	}
	return a == b
}

// ParseChord parses strings like "alt+t" or "Ctrl+Shift+O".
func ParseChord(s string) (Chord, error) {
	fields := strings.Split(s, "+")
	if len(fields) < 2 {
		return Chord{}, fmt.Errorf("hotkey %q: need at least one modifier and a key", s)
	}

	var c Chord
	for _, f := range fields[:len(fields)-1] {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "alt", "option":
			c.Modifiers = append(c.Modifiers, ModAlt)
		case "ctrl", "control":
			c.Modifiers = append(c.Modifiers, ModCtrl)
		case "shift":
			c.Modifiers = append(c.Modifiers, ModShift)
		case "super", "cmd", "win":
			c.Modifiers = append(c.Modifiers, ModSuper)
		default:
			return Chord{}, fmt.Errorf("hotkey %q: unknown modifier %q", s, f)
		}
	}

	key := []rune(strings.TrimSpace(fields[len(fields)-1]))
	if len(key) != 1 || !(unicode.IsLetter(key[0]) || unicode.IsDigit(key[0])) || key[0] > unicode.MaxASCII {
		return Chord{}, fmt.Errorf("hotkey %q: key must be a single letter or digit", s)
	}
	c.Key = unicode.ToUpper(key[0])
	return c, nil
}

// Event is one press of a registered chord.
type Event struct {
	ID uint32
}

// Binding is a registered chord and the token its events carry.
type Binding struct {
	ID    uint32
	Chord Chord
}

// Matches reports whether ev was produced by this binding.
func (b Binding) Matches(ev Event) bool {
	return ev.ID == b.ID
}

// Receiver yields queued events without blocking.
type Receiver interface {
	TryRecv() (Event, bool)
}

// Manager owns hotkey registrations for the life of the process.
type Manager interface {
	Register(Chord) (Binding, error)
	Receiver() Receiver
	Close() error
}

// QueueSize bounds pending presses; a frame drains them all.
const QueueSize = 16

var ErrClosed = errors.New("hotkey manager closed")

var lastID atomic.Uint32

// NextID allocates a binding ID unique across every manager in the process.
func NextID() uint32 {
	return lastID.Add(1)
}

// Queue is a bounded event buffer shared by a manager and its Receiver.
type Queue struct {
	ch chan Event
}

func NewQueue() *Queue {
	return &Queue{ch: make(chan Event, QueueSize)}
}

func (q *Queue) TryRecv() (Event, bool) {
	select {
	case ev := <-q.ch:
		return ev, true
	default:
		return Event{}, false
	}
}

// Send enqueues ev and drops it when the queue is full.
func (q *Queue) Send(ev Event) bool {
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

// Forwarder copies notifications from an OS hotkey channel into a Queue,
// tagged with one binding ID.
type Forwarder struct {
	done chan struct{}
	stop sync.Once
	wg   sync.WaitGroup
}

// StartForwarder runs a forwarder until Stop is called.
func StartForwarder[T any](src <-chan T, id uint32, q *Queue) *Forwarder {
	f := &Forwarder{done: make(chan struct{})}
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		for {
			select {
			case <-f.done:
				return
			case _, ok := <-src:
				if !ok {
					return
				}
				q.Send(Event{ID: id})
			}
		}
	}()
	return f
}

// Stop ends the forwarder and waits for it to exit. Stop is idempotent.
func (f *Forwarder) Stop() {
	f.stop.Do(func() { close(f.done) })
	f.wg.Wait()
}

// LocalManager delivers presses reported by the application itself, e.g. a
// key the terminal already captured.
type LocalManager struct {
	mu       sync.Mutex
	bindings []Binding
	closed   bool
	queue    *Queue
}

func NewLocalManager() *LocalManager {
	return &LocalManager{queue: NewQueue()}
}

func (m *LocalManager) Register(c Chord) (Binding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return Binding{}, ErrClosed
	}
	b := Binding{ID: NextID(), Chord: c}
	m.bindings = append(m.bindings, b)
	return b, nil
}

func (m *LocalManager) Receiver() Receiver {
	return m.queue
}

// Press enqueues one event for every binding registered for c and returns
// how many were queued.
func (m *LocalManager) Press(c Chord) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0
	}
	n := 0
	for _, b := range m.bindings {
		if b.Chord.Equal(c) && m.queue.Send(Event{ID: b.ID}) {
			n++
		}
	}
	return n
}

func (m *LocalManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.bindings = nil
	return nil
}
