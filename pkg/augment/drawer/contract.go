package drawer

import (
	"github.com/askiada/go-augment/pkg/augment/measure"
	"github.com/askiada/go-augment/pkg/augment/model"
)

// Drawer is an interface that defines the methods for drawing an operator chain.
type Drawer interface {
	// AddOperator adds an operator to the drawer.
	AddOperator(op *model.OperatorInfo) error
	// AddLink adds a link between two consecutive operators.
	AddLink(parentName, childName string) error
	// AddMeasure colours operators with the cost recorded in measure.
	AddMeasure(measure measure.Measure) error
	// Draw writes the graph.
	Draw() error
}
