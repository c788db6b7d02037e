package check

// Target is one monitored endpoint. A fresh set is built at the start of
// every run and discarded afterwards; each target is mutated in place by
// Reconcile exactly once.
type Target struct {
	Name     string
	URL      string
	Expected Expectation

	// VerdictKnown is false until reconciliation has run; Matched and
	// Actual are meaningless before that.
	VerdictKnown bool
	Matched      bool
	Actual       string
}

func NewTarget(name, url string, expected Expectation) *Target {
	return &Target{Name: name, URL: url, Expected: expected}
}
