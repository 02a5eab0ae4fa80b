package main

import "fmt"

const (
	exitFailure = 1
	exitPartial    = 2
)

type exitError struct {
	code int
	err  error
}

func partialError(err error) exitError {
	return exitError{code: exitPartial, err: err}
}

func (e exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.ExitCode())
	}
	return e.err.Error()
}

func (e exitError) Unwrap() error {
	return e.err
}

func (e exitError) ExitCode() int {
	if e.code == 0 {
		return exitFailure
	}
	return e.code
}
