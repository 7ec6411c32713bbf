// SPDX-License-Identifier: MIT

package pipeline

import "fmt"

// Stage names a pipeline step.
type Stage string

// Stages in execution order.
const (
	StageETL         Stage = "etl"
	StageCorrelation Stage = "correlation"
	StageGraph       Stage = "graph"
	StageMST         Stage = "mst"
	StageExport      Stage = "export"
)

// StageError tags a failure with the stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: %s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func fail(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
