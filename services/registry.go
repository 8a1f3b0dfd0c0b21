package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"matchday-service/config"
	"matchday-service/pkg/common"
	"matchday-service/pkg/engine"
	"matchday-service/pkg/formation"
	"matchday-service/pkg/models"
)

// ViewBroadcaster 向直播视图推送最新比赛视图 (web 层的 WebSocket Hub 实现)
type ViewBroadcaster interface {
	BroadcastView(view *models.MatchView)
}

// RosterSource 球队名册来源，提示性校验用
type RosterSource interface {
	GetTeam(teamID string) (*models.Team, error)
}

// MatchRegistry 进程内比赛注册表: 每场比赛一个引擎实例，引擎是
// 该比赛状态的唯一修改者。注册表负责命令成功后的写穿持久化、
// 事件外发和视图广播；失败的命令不触碰任何一项。
type MatchRegistry struct {
	mu      sync.RWMutex
	engines map[string]*engine.Engine
	runners map[string]*engine.TickRunner

	catalog     *formation.Catalog
	store       *MatchStore
	broker      MessageBroker
	teams       RosterSource
	broadcaster ViewBroadcaster
	cfg         *config.Config
	log         common.Logger

	rosters map[string]*models.Team // match_id -> 用户球队名册缓存
}

// NewMatchRegistry 创建注册表
func NewMatchRegistry(cfg *config.Config, catalog *formation.Catalog, store *MatchStore,
	broker MessageBroker, teams RosterSource, log common.Logger) *MatchRegistry {
	return &MatchRegistry{
		engines: make(map[string]*engine.Engine),
		runners: make(map[string]*engine.TickRunner),
		rosters: make(map[string]*models.Team),
		catalog: catalog,
		store:   store,
		broker:  broker,
		teams:   teams,
		cfg:     cfg,
		log:     log,
	}
}

// SetBroadcaster 注入视图广播器 (在 Hub 创建后调用)
func (r *MatchRegistry) SetBroadcaster(b ViewBroadcaster) {
	r.broadcaster = b
}

// CreateMatchInput 创建比赛的命令载荷
type CreateMatchInput struct {
	TeamID       string          `json:"team_id"`
	TeamName     string          `json:"team_name"`
	OpponentName string          `json:"opponent_name"`
	UserTeamType models.TeamType `json:"user_team_type"`
	Format       string          `json:"match_format"`
	Date         time.Time       `json:"date"`
	Venue        string          `json:"venue"`
}

// CreateMatch 创建比赛: scheduled 阶段、零时钟、空事件日志
func (r *MatchRegistry) CreateMatch(in CreateMatchInput) (*models.MatchView, error) {
	if in.UserTeamType != models.TeamTypeHome && in.UserTeamType != models.TeamTypeAway {
		return nil, fmt.Errorf("%w: user_team_type %q", common.ErrValidation, in.UserTeamType)
	}
	if in.OpponentName == "" {
		return nil, fmt.Errorf("%w: opponent_name required", common.ErrValidation)
	}
	if _, err := r.catalog.Formations(in.Format); err != nil {
		return nil, err
	}

	match := &models.Match{
		ID:           fmt.Sprintf("m_%d", time.Now().UnixNano()),
		TeamID:       in.TeamID,
		TeamName:     in.TeamName,
		OpponentName: in.OpponentName,
		UserTeamType: in.UserTeamType,
		Format:       in.Format,
		Date:         in.Date,
		Venue:        in.Venue,
		CreatedAt:    time.Now(),
	}

	e, err := engine.New(match, r.catalog, r.cfg.BenchSize)
	if err != nil {
		return nil, err
	}

	if r.store != nil {
		if err := r.store.CreateMatch(match); err != nil {
			return nil, fmt.Errorf("failed to persist match: %w", err)
		}
	}

	r.mu.Lock()
	r.engines[match.ID] = e
	r.mu.Unlock()

	r.log.Info("Match created: %s (%s vs %s, %s)", match.ID, match.TeamName, match.OpponentName, match.Format)
	return e.View(), nil
}

// Get 查找比赛引擎
func (r *MatchRegistry) Get(matchID string) (*engine.Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.engines[matchID]
	if !ok {
		return nil, fmt.Errorf("%w: match %s", common.ErrNotFound, matchID)
	}
	return e, nil
}

// StartMatch 开赛并启动该比赛的时钟节拍任务
func (r *MatchRegistry) StartMatch(matchID string) (*models.MatchView, error) {
	e, err := r.Get(matchID)
	if err != nil {
		return nil, err
	}
	if err := e.Start(); err != nil {
		return nil, err
	}

	r.startRunner(matchID, e)
	return r.afterCommand(e), nil
}

// PauseResumeMatch 切换时钟运行状态
func (r *MatchRegistry) PauseResumeMatch(matchID string) (*models.MatchView, error) {
	e, err := r.Get(matchID)
	if err != nil {
		return nil, err
	}
	if err := e.PauseResume(); err != nil {
		return nil, err
	}

	// 重启恢复的比赛没有节拍任务，恢复运行时补一个
	if e.IsRunning() {
		r.startRunner(matchID, e)
	}
	return r.afterCommand(e), nil
}

// CallHalfTime 中场休息
func (r *MatchRegistry) CallHalfTime(matchID string) (*models.MatchView, error) {
	e, err := r.Get(matchID)
	if err != nil {
		return nil, err
	}
	if err := e.CallHalfTime(); err != nil {
		return nil, err
	}
	return r.afterCommand(e), nil
}

// StartSecondHalf 开始下半场
func (r *MatchRegistry) StartSecondHalf(matchID string) (*models.MatchView, error) {
	e, err := r.Get(matchID)
	if err != nil {
		return nil, err
	}
	if err := e.StartSecondHalf(); err != nil {
		return nil, err
	}

	r.startRunner(matchID, e)
	return r.afterCommand(e), nil
}

// CallFullTime 终场，停止并回收节拍任务
func (r *MatchRegistry) CallFullTime(matchID string) (*models.MatchView, error) {
	e, err := r.Get(matchID)
	if err != nil {
		return nil, err
	}
	if err := e.CallFullTime(); err != nil {
		return nil, err
	}

	r.stopRunner(matchID)
	return r.afterCommand(e), nil
}

// RecordEvent 记录比赛事件，成功后追加事件行并发布到 broker
func (r *MatchRegistry) RecordEvent(matchID string, in engine.EventInput) (*models.MatchView, error) {
	e, err := r.Get(matchID)
	if err != nil {
		return nil, err
	}

	ev, err := e.RecordEvent(in)
	if err != nil {
		return nil, err
	}

	if r.store != nil {
		if err := r.store.AppendEvent(ev); err != nil {
			r.log.Error("Failed to persist event %s: %v", ev.ID, err)
		}
	}
	r.publishEvent(ev)

	return r.afterCommand(e), nil
}

// AssignPlayer 首发分配，对用户一侧做提示性名册校验
func (r *MatchRegistry) AssignPlayer(matchID string, side models.TeamSide, slotID, playerID string) (*models.MatchView, error) {
	e, err := r.Get(matchID)
	if err != nil {
		return nil, err
	}

	if side == models.SideUser {
		r.checkRoster(e, playerID)
	}

	if err := e.AssignPlayer(side, slotID, playerID); err != nil {
		return nil, err
	}
	return r.afterLineupChange(e, side), nil
}

// AddSubstitute 替补席追加球员
func (r *MatchRegistry) AddSubstitute(matchID string, side models.TeamSide, playerID string) (*models.MatchView, error) {
	e, err := r.Get(matchID)
	if err != nil {
		return nil, err
	}

	if side == models.SideUser {
		r.checkRoster(e, playerID)
	}

	if err := e.AddSubstitute(side, playerID); err != nil {
		return nil, err
	}
	return r.afterLineupChange(e, side), nil
}

// RemoveSubstitute 替补席移除球员
func (r *MatchRegistry) RemoveSubstitute(matchID string, side models.TeamSide, playerID string) (*models.MatchView, error) {
	e, err := r.Get(matchID)
	if err != nil {
		return nil, err
	}
	if err := e.RemoveSubstitute(side, playerID); err != nil {
		return nil, err
	}
	return r.afterLineupChange(e, side), nil
}

// ChangeFormation 切换阵型
func (r *MatchRegistry) ChangeFormation(matchID string, side models.TeamSide, formationName string) (*models.MatchView, error) {
	e, err := r.Get(matchID)
	if err != nil {
		return nil, err
	}
	if err := e.ChangeFormation(side, formationName); err != nil {
		return nil, err
	}
	return r.afterLineupChange(e, side), nil
}

// GetMatchView 查询比赛当前视图
func (r *MatchRegistry) GetMatchView(matchID string) (*models.MatchView, error) {
	e, err := r.Get(matchID)
	if err != nil {
		return nil, err
	}
	return e.View(), nil
}

// Timeline 查询时间线，方向是展示参数
func (r *MatchRegistry) Timeline(matchID string, order engine.TimelineOrder) ([]models.MatchEvent, error) {
	e, err := r.Get(matchID)
	if err != nil {
		return nil, err
	}
	return e.Timeline(order), nil
}

// MatchIDs 当前注册的比赛 ID 列表
func (r *MatchRegistry) MatchIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.engines))
	for id := range r.engines {
		ids = append(ids, id)
	}
	return ids
}

// RunnerCount 活跃节拍任务数，统计接口用
func (r *MatchRegistry) RunnerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.runners)
}

// LoadOpen 服务启动时从数据库恢复未完赛的比赛。
// 损坏的记录以 ErrValidation 报告并跳过，不会中断启动。
func (r *MatchRegistry) LoadOpen() error {
	if r.store == nil {
		return nil
	}

	ids, err := r.store.LoadOpenMatches()
	if err != nil {
		return fmt.Errorf("failed to load open matches: %w", err)
	}

	restored := 0
	for _, id := range ids {
		if err := r.restoreMatch(id); err != nil {
			r.log.Warn("Skipping match %s: %v", id, err)
			continue
		}
		restored++
	}

	r.log.Info("Restored %d of %d open matches", restored, len(ids))
	return nil
}

func (r *MatchRegistry) restoreMatch(matchID string) error {
	match, phase, clock, err := r.store.LoadMatch(matchID)
	if err != nil {
		return err
	}

	e, err := engine.New(match, r.catalog, r.cfg.BenchSize)
	if err != nil {
		return err
	}

	events, err := r.store.LoadEvents(matchID)
	if err != nil {
		return err
	}
	if err := e.Restore(phase, clock, events); err != nil {
		return err
	}

	lineups, err := r.store.LoadLineups(matchID)
	if err != nil {
		return err
	}
	for side, view := range lineups {
		if err := e.RestoreLineup(side, view); err != nil {
			return err
		}
	}

	r.mu.Lock()
	r.engines[matchID] = e
	r.mu.Unlock()
	return nil
}

// Shutdown 停止所有节拍任务。视图拆除后不留任何后台工作。
func (r *MatchRegistry) Shutdown() {
	r.mu.Lock()
	runners := make([]*engine.TickRunner, 0, len(r.runners))
	for _, runner := range r.runners {
		runners = append(runners, runner)
	}
	r.runners = make(map[string]*engine.TickRunner)
	r.mu.Unlock()

	for _, runner := range runners {
		runner.Stop()
	}
}

func (r *MatchRegistry) startRunner(matchID string, e *engine.Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.runners[matchID]; ok {
		return
	}

	runner := engine.NewTickRunner(e, r.cfg.TickInterval, func() {
		r.broadcast(e)
	})
	r.runners[matchID] = runner
	go runner.Run()
}

func (r *MatchRegistry) stopRunner(matchID string) {
	r.mu.Lock()
	runner, ok := r.runners[matchID]
	if ok {
		delete(r.runners, matchID)
	}
	r.mu.Unlock()

	if ok {
		runner.Stop()
	}
}

// afterCommand 命令成功后的写穿与广播
func (r *MatchRegistry) afterCommand(e *engine.Engine) *models.MatchView {
	view := e.View()
	if r.store != nil {
		if err := r.store.SaveState(view.MatchID, view); err != nil {
			r.log.Error("Failed to persist match state %s: %v", view.MatchID, err)
		}
	}
	r.broadcastView(view)
	return view
}

func (r *MatchRegistry) afterLineupChange(e *engine.Engine, side models.TeamSide) *models.MatchView {
	view := e.View()
	if r.store != nil {
		lv := view.Lineups.User
		if side == models.SideOpposition {
			lv = view.Lineups.Opposition
		}
		if err := r.store.SaveLineup(view.MatchID, side, lv); err != nil {
			r.log.Error("Failed to persist lineup %s/%s: %v", view.MatchID, side, err)
		}
	}
	r.broadcastView(view)
	return view
}

func (r *MatchRegistry) broadcast(e *engine.Engine) {
	r.broadcastView(e.View())
}

func (r *MatchRegistry) broadcastView(view *models.MatchView) {
	if r.broadcaster != nil {
		r.broadcaster.BroadcastView(view)
	}
}

func (r *MatchRegistry) publishEvent(ev *models.MatchEvent) {
	if r.broker == nil {
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		r.log.Error("Failed to marshal event %s: %v", ev.ID, err)
		return
	}

	msg := BrokerMessage{
		Topic: EventRoutingKey(ev.MatchID, string(ev.Kind)),
		Key:   ev.MatchID,
		Value: payload,
	}
	if err := r.broker.Produce(msg); err != nil {
		r.log.Error("Failed to publish event %s: %v", ev.ID, err)
	}
}

// checkRoster 提示性名册校验: 球员不在名册只打 WARN，不阻止命令。
// 草根球队的数据录入经常先于名册维护。
func (r *MatchRegistry) checkRoster(e *engine.Engine, playerID string) {
	if r.teams == nil {
		return
	}

	match := e.Match()
	r.mu.Lock()
	team, ok := r.rosters[match.ID]
	r.mu.Unlock()

	if !ok {
		var err error
		team, err = r.teams.GetTeam(match.TeamID)
		if err != nil {
			r.log.Warn("Roster lookup failed for team %s: %v", match.TeamID, err)
			return
		}
		r.mu.Lock()
		r.rosters[match.ID] = team
		r.mu.Unlock()
	}

	if !team.HasPlayer(playerID) {
		r.log.Warn("Player %s is not on the roster of team %s", playerID, match.TeamID)
	}
}
