// Package tasklist implements the in-memory task collection of a session.
package tasklist

import (
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/service"
)

// Manager owns an ordered task collection. It is not safe for concurrent
// use; a session owns exactly one Manager.
type Manager struct {
	tasks  []service.Task
	ids    IDGenerator
	maxID  service.ID
	logger *log.Logger
}

var _ service.Service = (*Manager)(nil)

// Option configures a Manager.
type Option func(*Manager)

// WithIDGenerator sets the id source. The default is a Counter starting at 1.
func WithIDGenerator(g IDGenerator) Option {
	return func(m *Manager) {
		if g != nil {
			m.ids = g
		}
	}
}

// WithLogger sets the logger used for debug traces of mutations.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates an empty Manager.
func New(opts ...Option) *Manager {
	m := &Manager{
		ids:    NewCounter(1),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add implements service.Service.
func (m *Manager) Add(text string) (service.Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		m.logger.Debug("ignored blank task")
		return service.Task{}, false
	}

	task := service.Task{ID: m.nextID(), Text: text}
	m.tasks = append(m.tasks, task)
	m.logger.Debug("task added", "id", task.ID, "total", len(m.tasks))
	return task, true
}

// nextID asks the generator for an id and falls back to the highest id
// issued so far plus one if the generator repeats itself.
func (m *Manager) nextID() service.ID {
	id := m.ids.NextID()
	if id <= m.maxID {
		m.logger.Debug("id generator collision", "id", id, "fallback", m.maxID+1)
		id = m.maxID + 1
	}
	m.maxID = id
	return id
}

// Toggle implements service.Service.
func (m *Manager) Toggle(id service.ID) (bool, bool) {
	i := m.index(id)
	if i < 0 {
		m.logger.Debug("toggle: task not found", "id", id)
		return false, false
	}
	m.tasks[i].Completed = !m.tasks[i].Completed
	m.logger.Debug("task toggled", "id", id, "completed", m.tasks[i].Completed)
	return m.tasks[i].Completed, true
}

// Remove implements service.Service.
func (m *Manager) Remove(id service.ID) bool {
	i := m.index(id)
	if i < 0 {
		m.logger.Debug("remove: task not found", "id", id)
		return false
	}
	m.tasks = slices.Delete(m.tasks, i, i+1)
	m.logger.Debug("task removed", "id", id, "total", len(m.tasks))
	return true
}

// Get implements service.Service.
func (m *Manager) Get(id service.ID) (service.Task, bool) {
	i := m.index(id)
	if i < 0 {
		return service.Task{}, false
	}
	return m.tasks[i], true
}

// List implements service.Service.
func (m *Manager) List() []service.Task {
	return slices.Clone(m.tasks)
}

// Remaining implements service.Service.
func (m *Manager) Remaining() int {
	n := 0
	for _, t := range m.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// Total implements service.Service.
func (m *Manager) Total() int {
	return len(m.tasks)
}

func (m *Manager) index(id service.ID) int {
	return slices.IndexFunc(m.tasks, func(t service.Task) bool {
		return t.ID == id
	})
}
