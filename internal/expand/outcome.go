package expand

//go:generate go tool stringer -type=Outcome -trimprefix=Outcome -output=outcome_string.go

// Outcome tells how the placeholders under one node were resolved.
type Outcome int

const (
	_ Outcome = iota // zero value is invalid

	OutcomeCurated
	OutcomeExamples
	OutcomeRemoved
)
