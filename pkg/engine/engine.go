package engine

import (
	"sort"
	"sync"
	"time"

	"matchday-service/pkg/formation"
	"matchday-service/pkg/lineup"
	"matchday-service/pkg/models"
)

// TimelineOrder 时间线排序方向，展示参数，与存储顺序 (追加顺序) 无关
type TimelineOrder string

const (
	OrderAsc  TimelineOrder = "asc"
	OrderDesc TimelineOrder = "desc"
)

// Engine 单场比赛的编排器: 组合阵型目录、阵容、阶段状态机与事件日志。
// 同一场比赛的所有命令和时钟节拍都通过内部互斥锁串行化，
// 一个 Engine 实例是其比赛状态的唯一修改者。
type Engine struct {
	mu sync.Mutex

	match   *models.Match
	phase   models.Phase
	clock   models.Clock
	running bool

	events    []models.MatchEvent
	seq       int
	scoreHome int
	scoreAway int

	lineups map[models.TeamSide]*lineup.Lineup
	catalog *formation.Catalog

	benchSize int
	now       func() time.Time
}

// New 创建比赛引擎，初始为 scheduled 阶段、零时钟、空事件日志
func New(match *models.Match, catalog *formation.Catalog, benchSize int) (*Engine, error) {
	defaultFormation, err := catalog.DefaultFormation(match.Format)
	if err != nil {
		return nil, err
	}

	lineups := make(map[models.TeamSide]*lineup.Lineup, 2)
	for _, side := range []models.TeamSide{models.SideUser, models.SideOpposition} {
		l, err := lineup.New(catalog, match.Format, defaultFormation, benchSize)
		if err != nil {
			return nil, err
		}
		lineups[side] = l
	}

	return &Engine{
		match:     match,
		phase:     models.PhaseScheduled,
		lineups:   lineups,
		catalog:   catalog,
		benchSize: benchSize,
		now:       time.Now,
	}, nil
}

// SetNowFunc 注入时间源，测试用
func (e *Engine) SetNowFunc(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = now
}

// Match 比赛静态信息
func (e *Engine) Match() *models.Match {
	return e.match
}

// Phase 当前阶段
func (e *Engine) Phase() models.Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// IsRunning 时钟是否在走
func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// View 当前派生视图: 阶段、时钟、比分、时间线、双方阵容
func (e *Engine) View() *models.MatchView {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewLocked(OrderAsc)
}

// Timeline 按 (minute, sequence_number) 排序的事件序列。
// 方向是展示参数; 存储顺序永远是追加顺序。
func (e *Engine) Timeline(order TimelineOrder) []models.MatchEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timelineLocked(order)
}

func (e *Engine) viewLocked(order TimelineOrder) *models.MatchView {
	view := &models.MatchView{
		MatchID:   e.match.ID,
		Phase:     e.phase,
		Clock:     e.clock,
		IsRunning: e.running,
		ScoreHome: e.scoreHome,
		ScoreAway: e.scoreAway,
		Timeline:  e.timelineLocked(order),
		Lineups: models.LineupViews{
			User:       e.lineups[models.SideUser].View(),
			Opposition: e.lineups[models.SideOpposition].View(),
		},
	}
	return view
}

func (e *Engine) timelineLocked(order TimelineOrder) []models.MatchEvent {
	out := make([]models.MatchEvent, len(e.events))
	copy(out, e.events)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Minute != out[j].Minute {
			if order == OrderDesc {
				return out[i].Minute > out[j].Minute
			}
			return out[i].Minute < out[j].Minute
		}
		if order == OrderDesc {
			return out[i].Sequence > out[j].Sequence
		}
		return out[i].Sequence < out[j].Sequence
	})
	return out
}
