package engine

import (
	"fmt"

	"matchday-service/pkg/common"
	"matchday-service/pkg/models"
)

// Start 开赛。仅允许从 scheduled 进入 first_half，时钟归零并启动。
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != models.PhaseScheduled {
		return fmt.Errorf("%w: start from %s", common.ErrInvalidTransition, e.phase)
	}

	e.phase = models.PhaseFirstHalf
	e.clock = models.Clock{Minute: 0, Second: 0}
	e.running = true
	return nil
}

// PauseResume 切换时钟运行状态，仅在上下半场内有效
func (e *Engine) PauseResume() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != models.PhaseFirstHalf && e.phase != models.PhaseSecondHalf {
		return fmt.Errorf("%w: pause/resume during %s", common.ErrInvalidTransition, e.phase)
	}

	e.running = !e.running
	return nil
}

// CallHalfTime 中场休息，仅允许从 first_half 进入，时钟停止
func (e *Engine) CallHalfTime() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != models.PhaseFirstHalf {
		return fmt.Errorf("%w: half time from %s", common.ErrInvalidTransition, e.phase)
	}

	e.phase = models.PhaseHalfTime
	e.running = false
	return nil
}

// StartSecondHalf 开始下半场，仅允许从 half_time 进入，时钟置为 45:00
func (e *Engine) StartSecondHalf() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != models.PhaseHalfTime {
		return fmt.Errorf("%w: second half from %s", common.ErrInvalidTransition, e.phase)
	}

	e.phase = models.PhaseSecondHalf
	e.clock = models.Clock{Minute: 45, Second: 0}
	e.running = true
	return nil
}

// CallFullTime 终场。允许从上下半场进入，不可逆。
func (e *Engine) CallFullTime() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != models.PhaseFirstHalf && e.phase != models.PhaseSecondHalf {
		return fmt.Errorf("%w: full time from %s", common.ErrInvalidTransition, e.phase)
	}

	e.phase = models.PhaseFullTime
	e.running = false
	return nil
}

// Tick 推进时钟一个比赛秒。时钟停止或阶段不在上下半场时为 no-op，
// 因此已调度但晚到的节拍不会在终场哨后推进时钟。
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return
	}
	if e.phase != models.PhaseFirstHalf && e.phase != models.PhaseSecondHalf {
		return
	}

	e.clock.Second++
	if e.clock.Second == 59 {
		e.clock.Second = 0
		e.clock.Minute++
	}
}

// Clock 当前时钟读数
func (e *Engine) Clock() models.Clock {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock
}
