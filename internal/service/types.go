// Package service defines the interface the presentation layer uses to
// drive a task session.
package service

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies a task within a session.
type ID int64

// String returns the decimal form of the id.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a task id as typed by a user: "3" or "#3".
func ParseID(s string) (ID, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid task id: %s", s)
	}
	return ID(n), nil
}

// Task represents a single task item.
type Task struct {
	ID        ID
	Text      string
	Completed bool
}
