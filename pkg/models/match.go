package models

import "time"

// Phase 比赛阶段
type Phase string

const (
	PhaseScheduled  Phase = "scheduled"
	PhaseFirstHalf  Phase = "first_half"
	PhaseHalfTime   Phase = "half_time"
	PhaseSecondHalf Phase = "second_half"
	PhaseFullTime   Phase = "full_time"
)

// TeamType 用户球队在比赛中的主客场归属，创建比赛时固定
type TeamType string

const (
	TeamTypeHome TeamType = "home"
	TeamTypeAway TeamType = "away"
)

// TeamSide 事件归属方: 用户球队或对手
type TeamSide string

const (
	SideUser       TeamSide = "user"
	SideOpposition TeamSide = "opposition"
)

// Clock 比赛时钟
type Clock struct {
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// Match 一场比赛的静态信息 (创建时确定，不随比赛进行变化)
type Match struct {
	ID           string    `json:"id"`
	TeamID       string    `json:"team_id"`
	TeamName     string    `json:"team_name"`
	OpponentName string    `json:"opponent_name"`
	UserTeamType TeamType  `json:"user_team_type"`
	Format       string    `json:"match_format"`
	Date         time.Time `json:"date"`
	Venue        string    `json:"venue"`
	CreatedAt    time.Time `json:"created_at"`
}

// MatchView 比赛当前派生视图，每条命令成功后重新计算
type MatchView struct {
	MatchID   string       `json:"match_id"`
	Phase     Phase        `json:"phase"`
	Clock     Clock        `json:"clock"`
	IsRunning bool         `json:"is_running"`
	ScoreHome int          `json:"score_home"`
	ScoreAway int          `json:"score_away"`
	Timeline  []MatchEvent `json:"timeline"`
	Lineups   LineupViews  `json:"lineups"`
}

// LineupViews 双方阵容视图
type LineupViews struct {
	User       *LineupView `json:"user,omitempty"`
	Opposition *LineupView `json:"opposition,omitempty"`
}

// LineupView 单方阵容视图
type LineupView struct {
	Formation   string            `json:"formation"`
	Positions   map[string]string `json:"positions"` // slot_id -> player_id
	Substitutes []string          `json:"substitutes"`
}

// ResolveSide 将事件归属方解析为主/客场。user 映射到 userTeamType，
// opposition 映射到互补一侧。比分推导必须且只能依赖这一个固定映射。
func ResolveSide(side TeamSide, userTeamType TeamType) TeamType {
	if side == SideUser {
		return userTeamType
	}
	if userTeamType == TeamTypeHome {
		return TeamTypeAway
	}
	return TeamTypeHome
}
