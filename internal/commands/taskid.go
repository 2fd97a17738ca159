package commands

import (
	"errors"
	"fmt"
	"io"

	"todo/internal/service"
)

// ErrTaskIDRequired indicates no task id was provided.
var ErrTaskIDRequired = errors.New("task id required")

// ParseTaskIDs parses every positional argument as a task id.
// All arguments are validated before any is returned, so a typo never
// leaves a command half applied.
func ParseTaskIDs(args []string) ([]service.ID, error) {
	if len(args) == 0 {
		return nil, ErrTaskIDRequired
	}

	ids := make([]service.ID, 0, len(args))
	for _, arg := range args {
		id, err := service.ParseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// reportNotFound prints the not-found error for a task id.
func reportNotFound(errOut io.Writer, id service.ID) {
	fmt.Fprintf(errOut, "error: task not found: %d\n", id)
}
