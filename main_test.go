package main

import "testing"

func TestEffectiveVersionPrefersInjected(t *testing.T) {
	if got := effectiveVersion("v1.2.3"); got != "v1.2.3" {
		t.Errorf("effectiveVersion(v1.2.3) = %q", got)
	}
}

func TestEffectiveVersionDevFallback(t *testing.T) {
	// Under `go test` there is no injected version and no VCS stamp
	// guarantee; the result must at minimum never be empty.
	if got := effectiveVersion("dev"); got == "" {
		t.Error("effectiveVersion(dev) returned empty string")
	}
}
