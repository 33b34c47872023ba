package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-augment/pkg/augment/measure"
	"github.com/askiada/go-augment/pkg/augment/model"
)

type orchestratorDrawer struct {
	Drawer
	m measure.Measure
}

func (od *orchestratorDrawer) New() error {
	err := od.AddOperator(model.StartOperator)
	if err != nil {
		return errors.Wrap(err, "unable to add start operator to drawer")
	}
	err = od.AddOperator(model.EndOperator)
	if err != nil {
		return errors.Wrap(err, "unable to add end operator to drawer")
	}

	return nil
}

func (od *orchestratorDrawer) PrepareOperator(parent, op *model.OperatorInfo) error {
	if op != model.EndOperator {
		err := od.AddOperator(op)
		if err != nil {
			return err
		}
	}

	return od.AddLink(parent.Name, op.Name)
}

func (od *orchestratorDrawer) OnOperatorOutput(_ *model.OperatorInfo, _ int, _ time.Duration) error {
	return nil
}

func (od *orchestratorDrawer) Finish() error {
	if od.m != nil {
		err := od.AddMeasure(od.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure to drawer")
		}
	}

	return od.Draw()
}

// OrchestratorDrawer returns a hook drawing the operator chain with d when the
// orchestrator is closed. When m is set, operators are coloured with its metrics.
func OrchestratorDrawer(d Drawer, m measure.Measure) model.Hook {
	return &orchestratorDrawer{Drawer: d, m: m}
}
