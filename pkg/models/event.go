package models

import "time"

// EventKind 事件类型
type EventKind string

const (
	EventGoal         EventKind = "goal"
	EventAssist       EventKind = "assist"
	EventYellowCard   EventKind = "yellow_card"
	EventRedCard      EventKind = "red_card"
	EventSubstitution EventKind = "substitution"
)

// ValidEventKind 校验事件类型是否在允许集合内
func ValidEventKind(kind EventKind) bool {
	switch kind {
	case EventGoal, EventAssist, EventYellowCard, EventRedCard, EventSubstitution:
		return true
	}
	return false
}

// EventDetail 按事件类型区分的附加载荷。每种类型的必要属性由
// 各自的结构体静态约束，而不是松散的可选字段袋。
type EventDetail interface {
	DetailKind() EventKind
}

// GoalDetail 进球附加信息
type GoalDetail struct {
	AssistPlayerID string `json:"assist_player_id,omitempty"`
}

func (GoalDetail) DetailKind() EventKind { return EventGoal }

// SubstitutionDetail 换人附加信息: 下场与上场球员
type SubstitutionDetail struct {
	PlayerOff string `json:"player_off"`
	PlayerOn  string `json:"player_on"`
}

func (SubstitutionDetail) DetailKind() EventKind { return EventSubstitution }

// MatchEvent 比赛事件，追加后不可变。修正通过追加新事件表达，
// 不支持编辑或删除。
type MatchEvent struct {
	ID         string      `json:"id"`
	MatchID    string      `json:"match_id"`
	Side       TeamSide    `json:"team_side"`
	PlayerID   string      `json:"player_id,omitempty"`
	PlayerName string      `json:"player_name,omitempty"`
	Kind       EventKind   `json:"event_kind"`
	Minute     int         `json:"minute"`
	Sequence   int         `json:"sequence_number"`
	RecordedAt time.Time   `json:"recorded_at"`
	Detail     EventDetail `json:"detail,omitempty"`
}
