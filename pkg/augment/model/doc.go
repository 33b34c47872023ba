// Package model provides the data structures shared by the augment packages.
// It defines the image arrays that flow through the operators, the operator
// descriptors and the hook interface used to observe an orchestrator.
package model
