package runner

import (
	"fmt"
	"sort"

	"github.com/hamed0406/gatewatch/internal/check"
)

// Profile is one compiled-in deployment variant: a gating target whose
// expected state is deliberately anomalous, plus peers that should answer
// normally. Build returns a fresh target set every call; nothing survives
// between runs.
type Profile struct {
	Name       string
	GatingName string
	Build      func(gatingURL string) []*check.Target
}

var profiles = map[string]Profile{
	"standard": {
		Name:       "standard",
		GatingName: "archive-service",
		Build: func(gatingURL string) []*check.Target {
			return []*check.Target{
				check.NewTarget("archive-service", gatingURL, check.ExpectedFailure("connect timeout")),
				check.NewTarget("www.amazon.co.uk", "https://www.amazon.co.uk", check.ExpectedStatus(200)),
				check.NewTarget("www.nationalarchives.gov.uk", "https://www.nationalarchives.gov.uk", check.ExpectedStatus(200)),
			}
		},
	},
	"restricted": {
		Name:       "restricted",
		GatingName: "archive-admin",
		Build: func(gatingURL string) []*check.Target {
			return []*check.Target{
				check.NewTarget("archive-admin", gatingURL, check.ExpectedStatus(403)),
				check.NewTarget("www.nationalarchives.gov.uk", "https://www.nationalarchives.gov.uk", check.ExpectedStatus(200)),
			}
		},
	},
}

func ProfileByName(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (have %v)", name, profileNames())
	}
	return p, nil
}

func profileNames() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
