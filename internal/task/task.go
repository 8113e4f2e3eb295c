// Package task wraps pipeline stages with uniform logging and error
// tagging so the CLI reports which stage of a run failed.
package task

import "github.com/amascaro08/FloHub/internal/logger"

// StageError tags a failure with the pipeline stage it occurred in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return "stage " + e.Stage + " failed: " + e.Err.Error()
}

func (e *StageError) Unwrap() error { return e.Err }

// Runner executes named stages, logging start and outcome.
type Runner struct {
	log logger.Logger
}

func NewRunner(log logger.Logger) *Runner {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Runner{log: log}
}

// Run executes fn, returning any failure wrapped in a StageError.
func (r *Runner) Run(stage string, fn func() error) error {
	r.log.Debug("executing stage", "stage", stage)
	if err := fn(); err != nil {
		r.log.Error("stage failed", err, "stage", stage)
		return &StageError{Stage: stage, Err: err}
	}
	r.log.Debug("stage completed", "stage", stage)
	return nil
}
