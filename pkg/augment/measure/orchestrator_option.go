package measure

import (
	"time"

	"github.com/askiada/go-augment/pkg/augment/model"
)

type orchestratorMeasure struct {
	Measure
}

func (om *orchestratorMeasure) New() error {
	return nil
}

func (om *orchestratorMeasure) PrepareOperator(_, op *model.OperatorInfo) error {
	om.AddMetric(op.Name)

	return nil
}

func (om *orchestratorMeasure) OnOperatorOutput(op *model.OperatorInfo, samples int, elapsed time.Duration) error {
	mt := om.GetMetric(op.Name)
	if mt == nil {
		// operators outside the chain, such as crops, are measured on first use
		mt = om.AddMetric(op.Name)
	}
	mt.AddDuration(elapsed, samples)

	return nil
}

func (om *orchestratorMeasure) Finish() error {
	return nil
}

// OrchestratorMeasure returns a hook recording the cost of every operator in m.
// The end operator records the duration of whole Augment calls.
func OrchestratorMeasure(m Measure) model.Hook {
	return &orchestratorMeasure{m}
}
