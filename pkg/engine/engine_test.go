package engine

import (
	"sync"
	"testing"
	"time"

	"matchday-service/pkg/models"
)

func TestMatchScenario(t *testing.T) {
	e := newTestEngine(t)

	if err := e.Start(); err != nil {
		t.Fatal(err)
	}

	if err := e.AssignPlayer(models.SideUser, "GK", "player_a"); err != nil {
		t.Fatalf("Assign player_a: %v", err)
	}
	if err := e.AssignPlayer(models.SideUser, "GK", "player_b"); err != nil {
		t.Fatalf("Assign player_b: %v", err)
	}

	view := e.View()
	if view.Lineups.User.Positions["GK"] != "player_b" {
		t.Errorf("GK = %s, want player_b", view.Lineups.User.Positions["GK"])
	}

	excluded, err := e.ExcludedPlayers(models.SideUser)
	if err != nil {
		t.Fatal(err)
	}
	if !excluded["player_b"] {
		t.Error("player_b should be excluded")
	}
	if excluded["player_a"] {
		t.Error("player_a should no longer be excluded")
	}
}

func TestViewReflectsState(t *testing.T) {
	e := newTestEngine(t)

	view := e.View()
	if view.Phase != models.PhaseScheduled {
		t.Errorf("Initial phase = %s, want scheduled", view.Phase)
	}
	if view.ScoreHome != 0 || view.ScoreAway != 0 {
		t.Errorf("Initial score = %d-%d, want 0-0", view.ScoreHome, view.ScoreAway)
	}
	if len(view.Timeline) != 0 {
		t.Errorf("Initial timeline length = %d, want 0", len(view.Timeline))
	}

	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if _, err := e.RecordEvent(EventInput{Side: models.SideUser, Kind: models.EventGoal, Minute: intPtr(7)}); err != nil {
		t.Fatal(err)
	}

	view = e.View()
	if view.Phase != models.PhaseFirstHalf || !view.IsRunning {
		t.Errorf("View = %s running=%v, want first_half running", view.Phase, view.IsRunning)
	}
	if view.ScoreHome != 1 || len(view.Timeline) != 1 {
		t.Errorf("View score=%d timeline=%d, want 1 and 1", view.ScoreHome, len(view.Timeline))
	}
}

func TestConcurrentCommandsAndTicks(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				e.Tick()
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 20; j++ {
			e.RecordEvent(EventInput{Side: models.SideUser, Kind: models.EventYellowCard, Minute: intPtr(j)})
		}
	}()
	wg.Wait()

	// 每 59 个节拍进一分钟: 200 = 3*59 + 23
	if c := e.Clock(); c.Minute != 3 || c.Second != 23 {
		t.Errorf("Clock = %02d:%02d after 200 ticks, want 03:23", c.Minute, c.Second)
	}
	if e.EventCount() != 20 {
		t.Errorf("Event count = %d, want 20", e.EventCount())
	}
}

func TestTickRunnerStops(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}

	runner := NewTickRunner(e, time.Millisecond, nil)
	go runner.Run()

	time.Sleep(20 * time.Millisecond)
	runner.Stop()

	c1 := e.Clock()
	if c1.Second == 0 && c1.Minute == 0 {
		t.Error("Expected clock to advance while runner active")
	}

	time.Sleep(10 * time.Millisecond)
	if c2 := e.Clock(); c2 != c1 {
		t.Errorf("Clock advanced after Stop: %v -> %v", c1, c2)
	}

	// 重复 Stop 安全
	runner.Stop()
}
