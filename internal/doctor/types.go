package doctor

import "fmt"

// Status is the outcome of a single check line.
type Status int

const (
	// StatusPass means the check succeeded.
	StatusPass Status = iota
	// StatusWarn flags something worth attention that is not broken.
	StatusWarn
	// StatusFail means the check failed.
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Summary counts check outcomes by status.
type Summary struct {
	Passed   int
	Warnings int
	Failures int
}

func (s *Summary) record(st Status) {
	switch st {
	case StatusPass:
		s.Passed++
	case StatusWarn:
		s.Warnings++
	case StatusFail:
		s.Failures++
	}
}

// Total returns the number of recorded checks.
func (s Summary) Total() int {
	return s.Passed + s.Warnings + s.Failures
}

// Healthy reports whether no check failed. Warnings do not count.
func (s Summary) Healthy() bool {
	return s.Failures == 0
}
