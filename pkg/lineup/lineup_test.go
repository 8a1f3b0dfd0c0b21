package lineup

import (
	"errors"
	"testing"

	"matchday-service/pkg/common"
	"matchday-service/pkg/formation"
)

func newTestLineup(t *testing.T) *Lineup {
	t.Helper()
	l, err := New(formation.NewCatalog(), "7v7", "2-3-1", 5)
	if err != nil {
		t.Fatalf("New lineup: %v", err)
	}
	return l
}

func TestAssignAndReassign(t *testing.T) {
	l := newTestLineup(t)

	if err := l.Assign("GK", "player_a"); err != nil {
		t.Fatalf("Assign(GK, player_a): %v", err)
	}

	// 顶替: player_b 接管 GK，player_a 变为未分配
	if err := l.Assign("GK", "player_b"); err != nil {
		t.Fatalf("Assign(GK, player_b): %v", err)
	}

	excluded := l.ExcludedPlayers()
	if !excluded["player_b"] {
		t.Error("Expected player_b to be excluded")
	}
	if excluded["player_a"] {
		t.Error("Expected player_a to be unassigned after displacement")
	}
	if l.View().Positions["GK"] != "player_b" {
		t.Errorf("Expected GK to hold player_b, got %s", l.View().Positions["GK"])
	}
}

func TestAssignUnknownSlot(t *testing.T) {
	l := newTestLineup(t)

	err := l.Assign("CAM", "player_a")
	if !errors.Is(err, common.ErrUnknownSlot) {
		t.Errorf("Assign to missing slot: error = %v, want ErrUnknownSlot", err)
	}
}

func TestAssignDuplicatePlayer(t *testing.T) {
	l := newTestLineup(t)

	if err := l.Assign("GK", "player_a"); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := l.Assign("ST", "player_a"); !errors.Is(err, common.ErrDuplicatePlayer) {
		t.Errorf("Assign same player twice: error = %v, want ErrDuplicatePlayer", err)
	}

	if err := l.AddSubstitute("player_s"); err != nil {
		t.Fatalf("AddSubstitute: %v", err)
	}
	if err := l.Assign("ST", "player_s"); !errors.Is(err, common.ErrDuplicatePlayer) {
		t.Errorf("Assign benched player: error = %v, want ErrDuplicatePlayer", err)
	}
}

func TestBenchCapacityAndOrder(t *testing.T) {
	l := newTestLineup(t)

	subs := []string{"s1", "s2", "s3", "s4", "s5"}
	for _, pid := range subs {
		if err := l.AddSubstitute(pid); err != nil {
			t.Fatalf("AddSubstitute(%s): %v", pid, err)
		}
	}

	if err := l.AddSubstitute("s6"); !errors.Is(err, common.ErrBenchFull) {
		t.Errorf("AddSubstitute over capacity: error = %v, want ErrBenchFull", err)
	}

	view := l.View()
	for i, pid := range subs {
		if view.Substitutes[i] != pid {
			t.Errorf("Substitute order broken at %d: got %s, want %s", i, view.Substitutes[i], pid)
		}
	}
}

func TestRemoveSubstitute(t *testing.T) {
	l := newTestLineup(t)

	for _, pid := range []string{"s1", "s2", "s3"} {
		if err := l.AddSubstitute(pid); err != nil {
			t.Fatalf("AddSubstitute(%s): %v", pid, err)
		}
	}

	l.RemoveSubstitute("s2")

	view := l.View()
	if len(view.Substitutes) != 2 {
		t.Fatalf("Expected 2 substitutes, got %d", len(view.Substitutes))
	}
	if view.Substitutes[0] != "s1" || view.Substitutes[1] != "s3" {
		t.Errorf("Expected [s1 s3], got %v", view.Substitutes)
	}

	// 不存在的球员: no-op
	l.RemoveSubstitute("missing")
	if len(l.View().Substitutes) != 2 {
		t.Error("RemoveSubstitute of missing player should be a no-op")
	}
}

func TestExcludedPlayersNeverDuplicates(t *testing.T) {
	l := newTestLineup(t)

	if err := l.Assign("GK", "p1"); err != nil {
		t.Fatal(err)
	}
	if err := l.Assign("LB", "p2"); err != nil {
		t.Fatal(err)
	}
	if err := l.AddSubstitute("p3"); err != nil {
		t.Fatal(err)
	}

	excluded := l.ExcludedPlayers()
	if len(excluded) != 3 {
		t.Errorf("Expected 3 excluded players, got %d", len(excluded))
	}

	slots := len(l.Slots())
	if len(excluded) > slots+5 {
		t.Errorf("Excluded players %d exceeds slots+bench %d", len(excluded), slots+5)
	}
}

func TestChangeFormationResetsAssignments(t *testing.T) {
	l := newTestLineup(t)

	if err := l.Assign("GK", "p1"); err != nil {
		t.Fatal(err)
	}
	if err := l.AddSubstitute("p2"); err != nil {
		t.Fatal(err)
	}

	if err := l.ChangeFormation("3-2-1"); err != nil {
		t.Fatalf("ChangeFormation: %v", err)
	}

	view := l.View()
	if view.Formation != "3-2-1" {
		t.Errorf("Formation = %s, want 3-2-1", view.Formation)
	}
	if len(view.Positions) != 0 {
		t.Errorf("Expected empty positions after formation change, got %v", view.Positions)
	}
	if len(view.Substitutes) != 0 {
		t.Errorf("Expected empty bench after formation change, got %v", view.Substitutes)
	}
}

func TestUnknownFormationFallsBackToDefault(t *testing.T) {
	l, err := New(formation.NewCatalog(), "7v7", "4-4-2", 5)
	if err != nil {
		t.Fatalf("New with unknown formation: %v", err)
	}
	if l.FormationName() != "2-3-1" {
		t.Errorf("FormationName = %s, want default 2-3-1", l.FormationName())
	}
}
