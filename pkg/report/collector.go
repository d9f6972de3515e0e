package report

import (
	"github.com/boristopalov/bandits/pkg/core"
	"github.com/boristopalov/bandits/pkg/messaging"
)

// Collect drains the events already buffered in ch and returns the results
// of finished and failed evaluations in arrival order. It never blocks.
func Collect(ch <-chan messaging.Event) []core.Result {
	var results []core.Result
	for {
		select {
		case ev := <-ch:
			if ev.Kind == messaging.EvaluationStarted {
				continue
			}
			results = append(results, ev.Result)
		default:
			return results
		}
	}
}
