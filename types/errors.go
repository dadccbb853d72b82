/*
Copyright © 2026 Daystack Labs
*/
package types

import "errors"

var (
	// ErrTaskNotFound is returned when a task id does not exist in the store.
	ErrTaskNotFound = errors.New("task not found")
	// ErrCategoryNotFound is returned when a category id does not exist in the store.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrHabitNotFound is returned when a habit id does not exist in the store.
	ErrHabitNotFound = errors.New("habit not found")
)
