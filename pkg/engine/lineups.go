package engine

import (
	"fmt"

	"matchday-service/pkg/common"
	"matchday-service/pkg/lineup"
	"matchday-service/pkg/models"
)

func (e *Engine) lineupFor(side models.TeamSide) (*lineup.Lineup, error) {
	l, ok := e.lineups[side]
	if !ok {
		return nil, fmt.Errorf("%w: unknown team side %q", common.ErrValidation, side)
	}
	return l, nil
}

// AssignPlayer 将球员安排到某一方阵容的指定位置
func (e *Engine) AssignPlayer(side models.TeamSide, slotID, playerID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, err := e.lineupFor(side)
	if err != nil {
		return err
	}
	return l.Assign(slotID, playerID)
}

// AddSubstitute 向某一方替补席追加球员
func (e *Engine) AddSubstitute(side models.TeamSide, playerID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, err := e.lineupFor(side)
	if err != nil {
		return err
	}
	return l.AddSubstitute(playerID)
}

// RemoveSubstitute 从某一方替补席移除球员，不存在时为 no-op
func (e *Engine) RemoveSubstitute(side models.TeamSide, playerID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, err := e.lineupFor(side)
	if err != nil {
		return err
	}
	l.RemoveSubstitute(playerID)
	return nil
}

// ChangeFormation 切换某一方阵型，已有首发与替补全部清空
func (e *Engine) ChangeFormation(side models.TeamSide, formationName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, err := e.lineupFor(side)
	if err != nil {
		return err
	}
	return l.ChangeFormation(formationName)
}

// RestoreLineup 从持久化视图恢复某一方阵容。存储数据违反阵容
// 不变量时报 ErrValidation。
func (e *Engine) RestoreLineup(side models.TeamSide, view *models.LineupView) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, err := e.lineupFor(side)
	if err != nil {
		return err
	}
	if err := l.ChangeFormation(view.Formation); err != nil {
		return err
	}
	for slotID, playerID := range view.Positions {
		if err := l.Assign(slotID, playerID); err != nil {
			return fmt.Errorf("%w: stored lineup: %v", common.ErrValidation, err)
		}
	}
	for _, playerID := range view.Substitutes {
		if err := l.AddSubstitute(playerID); err != nil {
			return fmt.Errorf("%w: stored lineup: %v", common.ErrValidation, err)
		}
	}
	return nil
}

// ExcludedPlayers 某一方已占用球员集合，每次查询重新计算
func (e *Engine) ExcludedPlayers(side models.TeamSide) (map[string]bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, err := e.lineupFor(side)
	if err != nil {
		return nil, err
	}
	return l.ExcludedPlayers(), nil
}
