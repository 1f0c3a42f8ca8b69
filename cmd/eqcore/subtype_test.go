package eqcore

import "testing"

func TestSubtypeCommandSmoke(t *testing.T) {
	gradualTyping = false
	unlimitedRefinement = false
	if err := subtypeCmd.RunE(subtypeCmd, []string{"'ok'", "atom()"}); err != nil {
		t.Fatalf("subtype command failed: %v", err)
	}
}

func TestJoinCommandSmoke(t *testing.T) {
	if err := joinCmd.RunE(joinCmd, []string{"'ok'", "'error'"}); err != nil {
		t.Fatalf("join command failed: %v", err)
	}
}

func TestExplainCommandSmoke(t *testing.T) {
	if err := explainCmd.RunE(explainCmd, []string{"is_atom(x)"}); err != nil {
		t.Fatalf("explain command failed: %v", err)
	}
}
