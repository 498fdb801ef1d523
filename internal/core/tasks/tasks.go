// Package tasks holds the checklist shown next to the timer.
package tasks

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyName is returned when a task name is empty or only whitespace.
	ErrEmptyName = errors.New("task name is empty")
	// ErrIndexOutOfRange is returned when a task index does not exist.
	ErrIndexOutOfRange = errors.New("task index out of range")
)

// Task is a single checklist entry.
type Task struct {
	Name             string
	PlannedPomodoros int
	Completed        bool
}

// List is an insertion-ordered task checklist. Tasks are never removed.
type List struct {
	tasks []Task
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Add appends a pending task. Planned pomodoros below one are raised to one.
func (list *List) Add(name string, plannedPomodoros int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if plannedPomodoros < 1 {
		plannedPomodoros = 1
	}
	list.tasks = append(list.tasks, Task{
		Name:             name,
		PlannedPomodoros: plannedPomodoros,
	})
	return nil
}

// Toggle flips the completed flag of the task at index.
func (list *List) Toggle(index int) error {
	if index < 0 || index >= len(list.tasks) {
		return ErrIndexOutOfRange
	}
	list.tasks[index].Completed = !list.tasks[index].Completed
	return nil
}

// Tasks returns a copy of the list.
func (list *List) Tasks() []Task {
	return append([]Task(nil), list.tasks...)
}

// Len returns the number of tasks.
func (list *List) Len() int {
	return len(list.tasks)
}
