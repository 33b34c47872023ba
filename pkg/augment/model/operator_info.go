package model

// OperatorKind tells whether an operator changes pixel values or pixel positions.
type OperatorKind string

const (
	PhotometricKind OperatorKind = "photometric"
	GeometricKind   OperatorKind = "geometric"
	SentinelKind    OperatorKind = "sentinel"
)

// OperatorInfo describes one stage of an orchestrator.
type OperatorInfo struct {
	Name string
	Kind OperatorKind
}

var (
	StartOperator = &OperatorInfo{Name: "start", Kind: SentinelKind}
	EndOperator   = &OperatorInfo{Name: "end", Kind: SentinelKind}
)
