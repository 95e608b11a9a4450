package entities

import (
	"testing"
	"time"
)

func TestChallengeStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to ChallengeStatus
		want     bool
	}{
		{ChallengeStatusOpen, ChallengeStatusInProgress, true},
		{ChallengeStatusOpen, ChallengeStatusCancelled, true},
		{ChallengeStatusOpen, ChallengeStatusCompleted, false},
		{ChallengeStatusInProgress, ChallengeStatusCompleted, true},
		{ChallengeStatusInProgress, ChallengeStatusCancelled, false},
		{ChallengeStatusCompleted, ChallengeStatusOpen, false},
		{ChallengeStatusCancelled, ChallengeStatusOpen, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestRoomIDForChallenge(t *testing.T) {
	a := RoomIDForChallenge("ch-1")
	if a != RoomIDForChallenge("ch-1") {
		t.Fatalf("room id must be deterministic")
	}
	if a == RoomIDForChallenge("ch-2") {
		t.Fatalf("room ids must differ per challenge")
	}
}

func TestProjectRoom_RoleOf(t *testing.T) {
	r := ProjectRoom{StudentID: "stu", CorporateID: "corp"}
	if r.RoleOf("stu") != ParticipantRoleStudent {
		t.Fatalf("expected student")
	}
	if r.RoleOf("corp") != ParticipantRoleCorporate {
		t.Fatalf("expected corporate")
	}
	if r.RoleOf("x") != "" || r.RoleOf("") != "" {
		t.Fatalf("expected no role for outsiders")
	}
}

func TestMessageSeqOrdering(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	earlier := MessageSeq(base.Add(900*time.Millisecond), "b")
	later := MessageSeq(base.Add(time.Second), "a")
	if !(earlier < later) {
		t.Fatalf("expected %q < %q", earlier, later)
	}

	sameTimeA := RoomMessage{ID: "a", CreatedAt: base}
	sameTimeB := RoomMessage{ID: "b", CreatedAt: base}
	if !sameTimeA.Less(sameTimeB) || sameTimeB.Less(sameTimeA) {
		t.Fatalf("expected id tiebreak")
	}
	if !(sameTimeA.Seq() < sameTimeB.Seq()) {
		t.Fatalf("expected seq tiebreak to agree with Less")
	}
}

func TestSelectionToken_RoundTrip(t *testing.T) {
	tok := NewSelectionToken("ch-1", "p-1")
	parsed, err := ParseSelectionToken(tok.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != tok {
		t.Fatalf("expected %+v, got %+v", tok, parsed)
	}

	for _, bad := range []string{"", "!!!", "YWJj"} {
		if _, err := ParseSelectionToken(bad); err != ErrMalformedSelectionToken {
			t.Fatalf("expected malformed for %q, got %v", bad, err)
		}
	}
}

func TestEscrowDecision(t *testing.T) {
	if EscrowDecisionRelease.ResultingEscrowStatus() != EscrowStatusReleased {
		t.Fatalf("release must map to released")
	}
	if EscrowDecisionDispute.ResultingEscrowStatus() != EscrowStatusDisputed {
		t.Fatalf("dispute must map to disputed")
	}
	if EscrowDecision("refund").Valid() {
		t.Fatalf("unknown decision must be invalid")
	}
}

func TestProposalIDFor(t *testing.T) {
	if ProposalIDFor("ch-1", "stu-1") != ProposalIDFor("ch-1", "stu-1") {
		t.Fatalf("proposal id must be deterministic")
	}
	if ProposalIDFor("ch-1", "stu-1") == ProposalIDFor("ch-1", "stu-2") {
		t.Fatalf("different students must get different ids")
	}
}
