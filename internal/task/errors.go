package task

import "errors"

// EmptyTaskMessage is shown to the user when they submit a blank task.
const EmptyTaskMessage = "Please enter a task!"

// ErrEmptyTask matches any ValidationError raised for blank task text.
var ErrEmptyTask = errors.New("task text is empty")

// ValidationError reports input the user has to correct and resubmit.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrEmptyTask) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrEmptyTask
}
