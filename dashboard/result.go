package dashboard

import "weather-dash/models/forecast"

// State is the fetch state of a dashboard page.
type State int

const (
	Pending State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is Pending | Ready(payload) | Failed(err). Payload is set only when
// State is Ready, Err only when State is Failed.
type Result struct {
	State   State
	Payload *forecast.Payload
	Err     error
}

func PendingResult() Result {
	return Result{State: Pending}
}

// ReadyResult wraps a fetched payload. A nil payload is treated as a failure.
func ReadyResult(p *forecast.Payload) Result {
	if p == nil {
		return Result{State: Failed, Err: ErrEmptyPayload}
	}
	return Result{State: Ready, Payload: p}
}

func FailedResult(err error) Result {
	if err == nil {
		err = ErrEmptyPayload
	}
	return Result{State: Failed, Err: err}
}

// Settled reports whether the result is terminal.
func (r Result) Settled() bool {
	return r.State != Pending
}
