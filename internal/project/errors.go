package project

import (
	"errors"
	"fmt"
)

// ErrMissingName is returned when no project name was supplied.
var ErrMissingName = errors.New("please provide a project name")

// InvalidNameError is returned for names that are not a single path segment.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid project name %q: must be a single folder name", e.Name)
}

// TargetExistsError is returned when the project root is already present.
// Nothing has been written when it is returned.
type TargetExistsError struct {
	Path string
}

func (e *TargetExistsError) Error() string {
	return fmt.Sprintf("project folder already exists: %s", e.Path)
}

// Materialization steps, in execution order.
const (
	StepCreateRoot   = "create project folder"
	StepInitManifest = "initialize package.json"
	StepInstall      = "install dependencies"
	StepInstallDev   = "install dev dependencies"
	StepDirectories  = "create folders"
	StepFiles        = "write files"
	StepManifest     = "update package.json"
	StepAuxFiles     = "write .gitignore and config.env"
)

// StepError wraps the failure of a single materialization step. Files
// written by earlier steps are left in place.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

func stepErr(step string, err error) error {
	return &StepError{Step: step, Err: err}
}
