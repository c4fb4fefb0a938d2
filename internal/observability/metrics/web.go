// Package metrics emits the web tier's standard metrics to a statsd.Sink.
package metrics

import (
	"strconv"
	"time"

	obserrors "github.com/jobconnect/jobconnect-web/internal/observability/errors"
	"github.com/jobconnect/jobconnect-web/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// GuardMetric describes one route guard decision.
type GuardMetric struct {
	Decision string
	// Source is "handoff" or "backend".
	Source   string
	Duration time.Duration
}

// EmitGuardDecision records a guard decision and how long resolution took.
func EmitGuardDecision(sink statsd.Sink, in GuardMetric) {
	if sink == nil {
		return
	}
	tags := map[string]string{"decision": in.Decision, "source": in.Source}
	sink.Count("guard.decision", 1, tags)
	if in.Duration > 0 {
		sink.Timing("guard.resolve", in.Duration, CloneTags(tags))
	}
}

// BackendMetric describes one REST API call.
type BackendMetric struct {
	Endpoint string
	Status   int
	Duration time.Duration
	Err      error
}

// EmitBackendCall records a backend request outcome and latency.
func EmitBackendCall(sink statsd.Sink, in BackendMetric) {
	if sink == nil {
		return
	}
	tags := map[string]string{
		"endpoint": in.Endpoint,
		"result":   ResultSuccess,
	}
	if in.Status > 0 {
		tags["status"] = strconv.Itoa(in.Status)
	}
	if in.Err != nil {
		tags["result"] = ResultError
		tags["error_class"] = obserrors.Classify(in.Err)
	}
	sink.Count("backend.request", 1, tags)
	if in.Duration > 0 {
		sink.Timing("backend.duration", in.Duration, CloneTags(tags))
	}
}

// EmitAuthFlow records the outcome of a login, registration, callback or logout.
func EmitAuthFlow(sink statsd.Sink, flow string, err error) {
	if sink == nil {
		return
	}
	tags := map[string]string{"flow": flow, "result": ResultSuccess}
	if err != nil {
		tags["result"] = ResultError
		tags["error_class"] = obserrors.Classify(err)
	}
	sink.Count("auth.flow", 1, tags)
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
