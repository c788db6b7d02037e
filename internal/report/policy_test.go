package report

import (
	"testing"

	"github.com/hamed0406/gatewatch/internal/check"
)

func reconciled(name string, exp check.Expectation, matched bool, actual string) *check.Target {
	t := check.NewTarget(name, "https://"+name+".example", exp)
	t.VerdictKnown = true
	t.Matched = matched
	t.Actual = actual
	return t
}

func TestDecide_AllHealthy(t *testing.T) {
	// Gating timed out as expected, both peers returned their 200s.
	gating := reconciled("vault", check.ExpectedFailure("connect timeout"), true, "connect timeout")
	peers := map[string]*check.Target{
		"shop": reconciled("shop", check.ExpectedStatus(200), true, "200"),
		"docs": reconciled("docs", check.ExpectedStatus(200), true, "200"),
	}

	got := NewPolicy(nil).Decide(gating, peers)
	if len(got) != 0 {
		t.Fatalf("want empty reported set, got %v", got)
	}
}

func TestDecide_GatingMatchedOnePeerFailed(t *testing.T) {
	gating := reconciled("vault", check.ExpectedFailure("connect timeout"), true, "connect timeout")
	peers := map[string]*check.Target{
		"shop": reconciled("shop", check.ExpectedStatus(200), false, "500"),
		"docs": reconciled("docs", check.ExpectedStatus(200), true, "200"),
	}

	got := NewPolicy(nil).Decide(gating, peers)
	if len(got) != 1 {
		t.Fatalf("want exactly the failing peer, got %v", got)
	}
	if got["shop"] == nil {
		t.Fatalf("want shop reported, got %v", got)
	}
}

func TestDecide_GatingFailedSuppressesPeers(t *testing.T) {
	// Gating unexpectedly answered; peers passed but must still be hidden.
	gating := reconciled("vault", check.ExpectedFailure("connect timeout"), false, "200")
	peers := map[string]*check.Target{
		"shop": reconciled("shop", check.ExpectedStatus(200), true, "200"),
		"docs": reconciled("docs", check.ExpectedStatus(200), true, "200"),
	}

	got := NewPolicy(nil).Decide(gating, peers)
	if len(got) != 1 || got["vault"] == nil {
		t.Fatalf("want only the gating target, got %v", got)
	}
}

func TestDecide_GatingFailedSuppressesFailingPeersToo(t *testing.T) {
	gating := reconciled("vault", check.ExpectedFailure("connect timeout"), false, "200")
	peers := map[string]*check.Target{
		"shop": reconciled("shop", check.ExpectedStatus(200), false, "503"),
	}

	got := NewPolicy(nil).Decide(gating, peers)
	if len(got) != 1 || got["vault"] == nil {
		t.Fatalf("peer results must be suppressed entirely, got %v", got)
	}
}

func TestDecide_RestrictedStatusGating(t *testing.T) {
	// Gating expects a 403 and gets it; the one peer is healthy.
	gating := reconciled("admin", check.ExpectedStatus(403), true, "403")
	peers := map[string]*check.Target{
		"shop": reconciled("shop", check.ExpectedStatus(200), true, "200"),
	}

	got := NewPolicy(nil).Decide(gating, peers)
	if len(got) != 0 {
		t.Fatalf("want empty reported set, got %v", got)
	}
}

func TestDecide_Idempotent(t *testing.T) {
	gating := reconciled("vault", check.ExpectedFailure("connect timeout"), true, "connect timeout")
	peers := map[string]*check.Target{
		"shop": reconciled("shop", check.ExpectedStatus(200), false, "500"),
		"docs": reconciled("docs", check.ExpectedStatus(200), true, "200"),
	}

	p := NewPolicy(nil)
	first := p.Decide(gating, peers)
	second := p.Decide(gating, peers)
	if len(first) != len(second) {
		t.Fatalf("decision changed between calls: %v vs %v", first, second)
	}
	for name := range first {
		if second[name] == nil {
			t.Fatalf("decision changed between calls: %v vs %v", first, second)
		}
	}
}
