package service

// Service defines the operations on a session's task collection.
// Commands and the terminal UI only talk to this interface.
type Service interface {
	// Add trims text and appends a new open task.
	// Blank text is ignored and reported with ok == false.
	Add(text string) (task Task, ok bool)

	// Toggle flips the completed flag of a task and returns the new value.
	// found is false if no task has the id.
	Toggle(id ID) (completed bool, found bool)

	// Remove deletes a task. Returns false if no task has the id.
	Remove(id ID) bool

	// Get returns a copy of a single task.
	Get(id ID) (Task, bool)

	// List returns a copy of all tasks in insertion order.
	List() []Task

	// Remaining returns the number of tasks not yet completed.
	Remaining() int

	// Total returns the number of tasks.
	Total() int
}
