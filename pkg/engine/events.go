package engine

import (
	"fmt"

	"matchday-service/pkg/common"
	"matchday-service/pkg/models"
)

// EventInput 记录事件的命令载荷
type EventInput struct {
	Side       models.TeamSide
	PlayerID   string
	PlayerName string
	Kind       models.EventKind
	Minute     *int // 为空时取当前时钟分钟
	Detail     models.EventDetail
}

// RecordEvent 向事件日志追加一条事件。终场后返回 ErrMatchClosed；
// 事件类型不在允许集合或分钟为负返回 ErrValidation。
// 成功时分配单调递增的 sequence_number (同分钟按追加顺序区分)。
// 不做去重，幂等是调用方的责任。
func (e *Engine) RecordEvent(in EventInput) (*models.MatchEvent, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase == models.PhaseFullTime {
		return nil, fmt.Errorf("%w: match %s", common.ErrMatchClosed, e.match.ID)
	}
	if !models.ValidEventKind(in.Kind) {
		return nil, fmt.Errorf("%w: unknown event kind %q", common.ErrValidation, in.Kind)
	}
	if in.Side != models.SideUser && in.Side != models.SideOpposition {
		return nil, fmt.Errorf("%w: unknown team side %q", common.ErrValidation, in.Side)
	}

	minute := e.clock.Minute
	if in.Minute != nil {
		minute = *in.Minute
	}
	if minute < 0 {
		return nil, fmt.Errorf("%w: negative minute %d", common.ErrValidation, minute)
	}

	if in.Detail != nil && in.Detail.DetailKind() != in.Kind {
		return nil, fmt.Errorf("%w: %s detail on %s event", common.ErrValidation, in.Detail.DetailKind(), in.Kind)
	}

	e.seq++
	event := models.MatchEvent{
		ID:         fmt.Sprintf("%s-%d", e.match.ID, e.seq),
		MatchID:    e.match.ID,
		Side:       in.Side,
		PlayerID:   in.PlayerID,
		PlayerName: in.PlayerName,
		Kind:       in.Kind,
		Minute:     minute,
		Sequence:   e.seq,
		RecordedAt: e.now(),
		Detail:     in.Detail,
	}
	e.events = append(e.events, event)

	// 增量维护的计数器，必须与全量重算一致
	if event.Kind == models.EventGoal {
		if models.ResolveSide(event.Side, e.match.UserTeamType) == models.TeamTypeHome {
			e.scoreHome++
		} else {
			e.scoreAway++
		}
	}

	return &event, nil
}

// Score 当前比分 (主队, 客队)
func (e *Engine) Score() (int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scoreHome, e.scoreAway
}

// RecomputeScore 从完整事件日志重算比分。比分是日志过滤到进球
// 事件后的纯函数，主客归属只依赖创建比赛时固定的 user_team_type。
func (e *Engine) RecomputeScore() (int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return deriveScore(e.events, e.match.UserTeamType)
}

// EventCount 事件日志长度
func (e *Engine) EventCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.events)
}

func deriveScore(events []models.MatchEvent, userTeamType models.TeamType) (home, away int) {
	for _, ev := range events {
		if ev.Kind != models.EventGoal {
			continue
		}
		if models.ResolveSide(ev.Side, userTeamType) == models.TeamTypeHome {
			home++
		} else {
			away++
		}
	}
	return home, away
}

// Restore 从持久化记录恢复事件日志与比分，服务重启时使用。
// 事件重新按追加顺序编号，损坏的记录由加载方转换为 ErrValidation。
func (e *Engine) Restore(phase models.Phase, clock models.Clock, events []models.MatchEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch phase {
	case models.PhaseScheduled, models.PhaseFirstHalf, models.PhaseHalfTime,
		models.PhaseSecondHalf, models.PhaseFullTime:
	default:
		return fmt.Errorf("%w: unknown phase %q", common.ErrValidation, phase)
	}
	if clock.Minute < 0 || clock.Second < 0 || clock.Second > 59 {
		return fmt.Errorf("%w: bad clock %02d:%02d", common.ErrValidation, clock.Minute, clock.Second)
	}
	for _, ev := range events {
		if !models.ValidEventKind(ev.Kind) {
			return fmt.Errorf("%w: stored event %s has unknown kind %q", common.ErrValidation, ev.ID, ev.Kind)
		}
		if ev.Minute < 0 {
			return fmt.Errorf("%w: stored event %s has negative minute", common.ErrValidation, ev.ID)
		}
	}

	e.phase = phase
	e.clock = clock
	// 恢复后时钟一律停表，由操作者重新启动
	e.running = false
	e.events = make([]models.MatchEvent, len(events))
	copy(e.events, events)
	if len(events) > 0 {
		e.seq = events[len(events)-1].Sequence
	}
	e.scoreHome, e.scoreAway = deriveScore(e.events, e.match.UserTeamType)
	return nil
}
