package testutil

import (
	"github.com/charmbracelet/log"

	"todo/internal/config"
	"todo/internal/service"
	"todo/internal/tasklist"
)

// NewSession returns a manager with counter ids (1, 2, 3, ...) holding one
// open task per text, in order.
func NewSession(texts ...string) *tasklist.Manager {
	m := tasklist.New(tasklist.WithIDGenerator(tasklist.NewCounter(1)))
	for _, text := range texts {
		m.Add(text)
	}
	return m
}

// SessionFactory returns a session factory that always hands out m and
// counts how many times it was asked.
func SessionFactory(m *tasklist.Manager, calls *int) func(*config.Config, *log.Logger) (service.Service, error) {
	return func(*config.Config, *log.Logger) (service.Service, error) {
		if calls != nil {
			*calls++
		}
		return m, nil
	}
}

// LoggingSessionFactory returns a session factory that builds a fresh
// manager writing its traces to the logger the dispatcher hands over.
func LoggingSessionFactory() func(*config.Config, *log.Logger) (service.Service, error) {
	return func(_ *config.Config, logger *log.Logger) (service.Service, error) {
		return tasklist.New(tasklist.WithLogger(logger)), nil
	}
}
