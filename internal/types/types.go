package types

// Status classifies the outcome of checking one theorem.
type Status int

const (
	// StatusProved means the proof term synthesized the stated goal.
	StatusProved Status = iota
	// StatusFailed means checking aborted with a mismatch.
	StatusFailed
	// StatusSkipped means the theorem was ignored by configuration.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusProved:
		return "proved"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "?"
	}
}

// MarshalText implements encoding.TextMarshaler so JSON output carries
// the status name instead of a number.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result represents the outcome of checking a single theorem.
type Result struct {
	Theorem  string `json:"theorem"`
	Goal     string `json:"goal"`
	Status   Status `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// Failed reports whether the result is a failure.
func (r Result) Failed() bool {
	return r.Status == StatusFailed
}
