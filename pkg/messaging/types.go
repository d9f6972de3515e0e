package messaging

import (
	"time"

	"github.com/boristopalov/bandits/pkg/core"
)

type EventKind int

const (
	// EvaluationStarted is published before the first episode of a submission
	EvaluationStarted EventKind = iota
	// EvaluationFinished carries the aggregated result of a submission
	EvaluationFinished
	// EvaluationFailed carries a result whose Err is set
	EvaluationFailed
)

func (k EventKind) String() string {
	switch k {
	case EvaluationStarted:
		return "started"
	case EvaluationFinished:
		return "finished"
	case EvaluationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is one notification about the evaluation of a submission
type Event struct {
	RunID     string
	Kind      EventKind
	Result    core.Result // Name, Team and Algorithm are always set
	Timestamp time.Time
}

// Publisher delivers events to subscribers
type Publisher interface {
	Publish(ev Event) error
}

// Bus routes evaluation events to metrics consumers
type Bus interface {
	Publisher
	// Subscribe registers ch under name; with no kinds every event is delivered
	Subscribe(name string, ch chan<- Event, kinds ...EventKind) error
	// Unsubscribe removes a subscription
	Unsubscribe(name string) error
}
