package model

import "time"

// Hook defines the interface for orchestrator observers.
type Hook interface {
	// New initialises the hook.
	New() error
	// PrepareOperator runs once per enabled operator, in execution order, when
	// the orchestrator is built. The last call links the final operator to EndOperator.
	PrepareOperator(parent, op *OperatorInfo) error
	// OnOperatorOutput runs every time an operator has processed a batch.
	// EndOperator is reported once per call with the whole call duration.
	OnOperatorOutput(op *OperatorInfo, samples int, elapsed time.Duration) error
	// Finish runs when the orchestrator is closed.
	Finish() error
}
