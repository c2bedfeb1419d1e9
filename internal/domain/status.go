package domain

type Status string

const (
	StatusPending           Status = "PENDING"
	StatusParsing           Status = "PARSING"
	StatusValidating        Status = "VALIDATING"
	StatusStaging           Status = "STAGING"
	StatusLoaded            Status = "LOADED"
	StatusMatchingTriggered Status = "MATCHING_TRIGGERED"
	StatusFailed            Status = "FAILED"
)

// Phase is the position of the status in the pipeline. It is persisted next to
// the status so the store can refuse writes that would move a job backwards.
func (s Status) Phase() int {
	switch s {
	case StatusParsing:
		return 1
	case StatusValidating:
		return 2
	case StatusStaging:
		return 3
	case StatusLoaded:
		return 4
	case StatusMatchingTriggered:
		return 5
	case StatusFailed:
		return 6
	default:
		return 0
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusMatchingTriggered || s == StatusFailed
}

// CanTransitionTo reports whether next may follow s. Re-applying the current
// status is allowed so that redelivered phases stay idempotent.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() || next.Phase() == 0 {
		return false
	}

	if next == StatusFailed {
		return true
	}

	return next.Phase() >= s.Phase()
}
