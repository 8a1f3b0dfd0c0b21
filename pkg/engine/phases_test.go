package engine

import (
	"errors"
	"testing"

	"matchday-service/pkg/common"
	"matchday-service/pkg/formation"
	"matchday-service/pkg/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	match := &models.Match{
		ID:           "m1",
		TeamID:       "t1",
		TeamName:     "Red Lions",
		OpponentName: "Blue Rovers",
		UserTeamType: models.TeamTypeHome,
		Format:       "7v7",
	}
	e, err := New(match, formation.NewCatalog(), 5)
	if err != nil {
		t.Fatalf("New engine: %v", err)
	}
	return e
}

func TestStartFromScheduled(t *testing.T) {
	e := newTestEngine(t)

	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if e.Phase() != models.PhaseFirstHalf {
		t.Errorf("Phase = %s, want first_half", e.Phase())
	}
	if !e.IsRunning() {
		t.Error("Expected clock to be running after start")
	}
	if c := e.Clock(); c.Minute != 0 || c.Second != 0 {
		t.Errorf("Clock = %02d:%02d, want 00:00", c.Minute, c.Second)
	}

	// 重复开赛非法
	if err := e.Start(); !errors.Is(err, common.ErrInvalidTransition) {
		t.Errorf("Second Start: error = %v, want ErrInvalidTransition", err)
	}
}

func TestFullPhaseSequence(t *testing.T) {
	e := newTestEngine(t)

	steps := []struct {
		name string
		cmd  func() error
		want models.Phase
	}{
		{"start", e.Start, models.PhaseFirstHalf},
		{"half time", e.CallHalfTime, models.PhaseHalfTime},
		{"second half", e.StartSecondHalf, models.PhaseSecondHalf},
		{"full time", e.CallFullTime, models.PhaseFullTime},
	}

	for _, step := range steps {
		if err := step.cmd(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		if e.Phase() != step.want {
			t.Fatalf("%s: phase = %s, want %s", step.name, e.Phase(), step.want)
		}
	}

	if e.IsRunning() {
		t.Error("Clock should be stopped at full time")
	}
}

func TestSecondHalfOnlyFromHalfTime(t *testing.T) {
	e := newTestEngine(t)

	// scheduled 阶段
	if err := e.StartSecondHalf(); !errors.Is(err, common.ErrInvalidTransition) {
		t.Errorf("StartSecondHalf from scheduled: error = %v, want ErrInvalidTransition", err)
	}
	if e.Phase() != models.PhaseScheduled {
		t.Errorf("Phase changed after failed transition: %s", e.Phase())
	}

	// first_half 阶段
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if err := e.StartSecondHalf(); !errors.Is(err, common.ErrInvalidTransition) {
		t.Errorf("StartSecondHalf from first_half: error = %v, want ErrInvalidTransition", err)
	}
	if e.Phase() != models.PhaseFirstHalf {
		t.Errorf("Phase changed after failed transition: %s", e.Phase())
	}

	// full_time 阶段
	if err := e.CallFullTime(); err != nil {
		t.Fatal(err)
	}
	if err := e.StartSecondHalf(); !errors.Is(err, common.ErrInvalidTransition) {
		t.Errorf("StartSecondHalf from full_time: error = %v, want ErrInvalidTransition", err)
	}
}

func TestSecondHalfClockStartsAt45(t *testing.T) {
	e := newTestEngine(t)

	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if err := e.CallHalfTime(); err != nil {
		t.Fatal(err)
	}
	if err := e.StartSecondHalf(); err != nil {
		t.Fatal(err)
	}

	if c := e.Clock(); c.Minute != 45 || c.Second != 0 {
		t.Errorf("Clock = %02d:%02d, want 45:00", c.Minute, c.Second)
	}
	if !e.IsRunning() {
		t.Error("Expected clock running in second half")
	}
}

func TestPauseResumeToggles(t *testing.T) {
	e := newTestEngine(t)

	if err := e.PauseResume(); !errors.Is(err, common.ErrInvalidTransition) {
		t.Errorf("PauseResume while scheduled: error = %v, want ErrInvalidTransition", err)
	}

	if err := e.Start(); err != nil {
		t.Fatal(err)
	}

	if err := e.PauseResume(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if e.IsRunning() {
		t.Error("Expected clock paused")
	}

	// 暂停期间节拍不推进时钟
	e.Tick()
	if c := e.Clock(); c.Second != 0 {
		t.Errorf("Clock advanced while paused: %02d:%02d", c.Minute, c.Second)
	}

	if err := e.PauseResume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if !e.IsRunning() {
		t.Error("Expected clock running after resume")
	}

	if err := e.CallHalfTime(); err != nil {
		t.Fatal(err)
	}
	if err := e.PauseResume(); !errors.Is(err, common.ErrInvalidTransition) {
		t.Errorf("PauseResume during half_time: error = %v, want ErrInvalidTransition", err)
	}
}

func TestClockMinuteRollover(t *testing.T) {
	e := newTestEngine(t)

	if err := e.Start(); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 58; i++ {
		e.Tick()
	}
	if c := e.Clock(); c.Minute != 0 || c.Second != 58 {
		t.Fatalf("After 58 ticks: %02d:%02d, want 00:58", c.Minute, c.Second)
	}

	e.Tick()
	if c := e.Clock(); c.Minute != 1 || c.Second != 0 {
		t.Errorf("After 59 ticks: %02d:%02d, want 01:00", c.Minute, c.Second)
	}

	e.Tick()
	if c := e.Clock(); c.Minute != 1 || c.Second != 1 {
		t.Errorf("After 60 ticks: %02d:%02d, want 01:01", c.Minute, c.Second)
	}
}

func TestTickIgnoredAfterFullTime(t *testing.T) {
	e := newTestEngine(t)

	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	e.Tick()
	if err := e.CallFullTime(); err != nil {
		t.Fatal(err)
	}

	before := e.Clock()
	// 已调度但迟到的节拍
	e.Tick()
	if after := e.Clock(); after != before {
		t.Errorf("Clock advanced after full time: %02d:%02d", after.Minute, after.Second)
	}
}

func TestFullTimeIsTerminal(t *testing.T) {
	e := newTestEngine(t)

	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if err := e.CallFullTime(); err != nil {
		t.Fatal(err)
	}

	if err := e.Start(); !errors.Is(err, common.ErrInvalidTransition) {
		t.Errorf("Start after full time: error = %v, want ErrInvalidTransition", err)
	}
	if err := e.CallHalfTime(); !errors.Is(err, common.ErrInvalidTransition) {
		t.Errorf("CallHalfTime after full time: error = %v, want ErrInvalidTransition", err)
	}
	if err := e.CallFullTime(); !errors.Is(err, common.ErrInvalidTransition) {
		t.Errorf("CallFullTime twice: error = %v, want ErrInvalidTransition", err)
	}
}
