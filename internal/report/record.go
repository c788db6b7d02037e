package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/hamed0406/gatewatch/internal/check"
)

// Record is one structured report line, the console/log variant's payload
// and the shape returned by the HTTP trigger.
type Record struct {
	Status   string `json:"status"`
	Target   string `json:"target"`
	Message  string `json:"message"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

func FailureRecord(t *check.Target) Record {
	return Record{
		Status:   "Failure",
		Target:   t.Name,
		Message:  "This address is unexpectedly available",
		Expected: t.Expected.String(),
		Actual:   t.Actual,
	}
}

func SuccessRecord(gating *check.Target) Record {
	return Record{
		Status:  "Success",
		Target:  gating.Name,
		Message: fmt.Sprintf("%s returned an expected response: %s", gating.Name, gating.Expected),
	}
}

// Records renders the decision into report lines: one failure record per
// reported target (sorted by name for stable output), or a single success
// record for the gating target when nothing is reported.
func Records(gating *check.Target, reported map[string]*check.Target) []Record {
	if len(reported) == 0 {
		return []Record{SuccessRecord(gating)}
	}
	out := make([]Record, 0, len(reported))
	for _, name := range sortedNames(reported) {
		out = append(out, FailureRecord(reported[name]))
	}
	return out
}

func sortedNames(m map[string]*check.Target) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Emitter delivers the outcome of a run to some sink.
type Emitter interface {
	Emit(ctx context.Context, gating *check.Target, reported map[string]*check.Target) error
}
