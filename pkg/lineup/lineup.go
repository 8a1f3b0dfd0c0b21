package lineup

import (
	"fmt"

	"matchday-service/pkg/common"
	"matchday-service/pkg/formation"
	"matchday-service/pkg/models"
)

// Lineup 一支球队在一场比赛中的阵容: 位置到球员的映射加替补席。
// 不做并发保护，调用方 (比赛引擎) 负责串行化。
type Lineup struct {
	format        string
	formationName string
	benchSize     int
	catalog       *formation.Catalog

	assignments map[string]string // slot_id -> player_id
	substitutes []string
}

// New 创建空阵容，阵型名未知时回退到该赛制的默认阵型
func New(catalog *formation.Catalog, format, formationName string, benchSize int) (*Lineup, error) {
	if _, err := catalog.Resolve(format, formationName); err != nil {
		return nil, err
	}
	// 未知阵型名回退后记录实际生效的阵型名
	name := formationName
	if !containsName(catalog, format, formationName) {
		name, _ = catalog.DefaultFormation(format)
	}
	return &Lineup{
		format:        format,
		formationName: name,
		benchSize:     benchSize,
		catalog:       catalog,
		assignments:   make(map[string]string),
	}, nil
}

func containsName(c *formation.Catalog, format, name string) bool {
	fs, err := c.Formations(format)
	if err != nil {
		return false
	}
	for _, f := range fs {
		if f.Name == name {
			return true
		}
	}
	return false
}

// FormationName 当前生效的阵型名
func (l *Lineup) FormationName() string {
	return l.formationName
}

// Slots 当前阵型的位置序列
func (l *Lineup) Slots() []formation.Slot {
	slots, _ := l.catalog.Resolve(l.format, l.formationName)
	return slots
}

// Assign 将球员安排到指定位置。位置不属于当前阵型返回 ErrUnknownSlot；
// 球员已占用其他位置或在替补席返回 ErrDuplicatePlayer；
// 位置原占用者被顶替后变为未分配，不会自动进入替补席。
func (l *Lineup) Assign(slotID, playerID string) error {
	if !l.catalog.HasSlot(l.format, l.formationName, slotID) {
		return fmt.Errorf("%w: %q in formation %s", common.ErrUnknownSlot, slotID, l.formationName)
	}
	for sid, pid := range l.assignments {
		if pid == playerID && sid != slotID {
			return fmt.Errorf("%w: %s already assigned to %s", common.ErrDuplicatePlayer, playerID, sid)
		}
	}
	for _, pid := range l.substitutes {
		if pid == playerID {
			return fmt.Errorf("%w: %s already on the bench", common.ErrDuplicatePlayer, playerID)
		}
	}
	l.assignments[slotID] = playerID
	return nil
}

// Unassign 清空指定位置，位置为空或未知时为 no-op
func (l *Lineup) Unassign(slotID string) {
	delete(l.assignments, slotID)
}

// AddSubstitute 追加替补球员到替补席末尾，先加的排在前面
func (l *Lineup) AddSubstitute(playerID string) error {
	if len(l.substitutes) >= l.benchSize {
		return fmt.Errorf("%w: capacity %d", common.ErrBenchFull, l.benchSize)
	}
	for _, pid := range l.substitutes {
		if pid == playerID {
			return fmt.Errorf("%w: %s already on the bench", common.ErrDuplicatePlayer, playerID)
		}
	}
	for sid, pid := range l.assignments {
		if pid == playerID {
			return fmt.Errorf("%w: %s already assigned to %s", common.ErrDuplicatePlayer, playerID, sid)
		}
	}
	l.substitutes = append(l.substitutes, playerID)
	return nil
}

// RemoveSubstitute 从替补席移除球员，保持其余替补相对顺序。
// 球员不在替补席时为 no-op，不报错。
func (l *Lineup) RemoveSubstitute(playerID string) {
	for i, pid := range l.substitutes {
		if pid == playerID {
			l.substitutes = append(l.substitutes[:i], l.substitutes[i+1:]...)
			return
		}
	}
}

// ExcludedPlayers 返回所有已占用球员 (首发 + 替补)，供选人界面
// 屏蔽重复选择。每次查询重新计算，不缓存。
func (l *Lineup) ExcludedPlayers() map[string]bool {
	excluded := make(map[string]bool, len(l.assignments)+len(l.substitutes))
	for _, pid := range l.assignments {
		excluded[pid] = true
	}
	for _, pid := range l.substitutes {
		excluded[pid] = true
	}
	return excluded
}

// ChangeFormation 切换阵型。位置语义随阵型失效，已有的首发分配
// 与替补席全部清空。
func (l *Lineup) ChangeFormation(formationName string) error {
	if !containsName(l.catalog, l.format, formationName) {
		// 未知阵型名回退到默认，与目录的 Resolve 语义一致
		name, err := l.catalog.DefaultFormation(l.format)
		if err != nil {
			return err
		}
		formationName = name
	}
	l.formationName = formationName
	l.assignments = make(map[string]string)
	l.substitutes = nil
	return nil
}

// View 导出阵容视图
func (l *Lineup) View() *models.LineupView {
	positions := make(map[string]string, len(l.assignments))
	for sid, pid := range l.assignments {
		positions[sid] = pid
	}
	subs := make([]string, len(l.substitutes))
	copy(subs, l.substitutes)
	return &models.LineupView{
		Formation:   l.formationName,
		Positions:   positions,
		Substitutes: subs,
	}
}
