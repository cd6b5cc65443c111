package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates Run was called twice.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates Run was called without a terminal backend.
	ErrNoBackend = errors.New("no backend set")
)

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// OperationError reports a failed user action.
type OperationError struct {
	Op     string // action name, e.g. "jump"
	Target string // input the action was given
	Err    error
}

func (e *OperationError) Error() string {
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %q", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
