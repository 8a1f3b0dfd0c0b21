package database

import (
	"time"
)

// MatchRow 比赛记录行
type MatchRow struct {
	ID           string     `db:"id"`
	TeamID       string     `db:"team_id"`
	TeamName     *string    `db:"team_name"`
	OpponentName string     `db:"opponent_name"`
	UserTeamType string     `db:"user_team_type"`
	MatchFormat  string     `db:"match_format"`
	MatchDate    *time.Time `db:"match_date"`
	Venue        *string    `db:"venue"`
	Status       string     `db:"status"`
	ClockMinute  int        `db:"clock_minute"`
	ClockSecond  int        `db:"clock_second"`
	ScoreHome    int        `db:"score_home"`
	ScoreAway    int        `db:"score_away"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// MatchEventRow 比赛事件行
type MatchEventRow struct {
	ID             int64     `db:"id"`
	EventID        string    `db:"event_id"`
	MatchID        string    `db:"match_id"`
	TeamSide       string    `db:"team_side"`
	PlayerID       *string   `db:"player_id"`
	PlayerName     *string   `db:"player_name"`
	EventKind      string    `db:"event_kind"`
	Minute         int       `db:"minute"`
	SequenceNumber int       `db:"sequence_number"`
	Detail         []byte    `db:"detail"`
	RecordedAt     time.Time `db:"recorded_at"`
	CreatedAt      time.Time `db:"created_at"`
}

// MatchLineupRow 阵容行
type MatchLineupRow struct {
	MatchID     string    `db:"match_id"`
	TeamSide    string    `db:"team_side"`
	Formation   string    `db:"formation"`
	Positions   []byte    `db:"positions"`
	Substitutes []byte    `db:"substitutes"`
	UpdatedAt   time.Time `db:"updated_at"`
}
