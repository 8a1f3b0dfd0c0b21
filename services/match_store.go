package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"matchday-service/database"
	"matchday-service/pkg/common"
	"matchday-service/pkg/models"
)

// MatchStore 比赛记录的持久化层。每条命令成功后写穿,
// 重启时可以恢复未完赛的比赛。
type MatchStore struct {
	db *sql.DB
}

func NewMatchStore(db *sql.DB) *MatchStore {
	return &MatchStore{db: db}
}

// CreateMatch 插入新比赛记录
func (s *MatchStore) CreateMatch(m *models.Match) error {
	query := `
		INSERT INTO matches (id, team_id, team_name, opponent_name, user_team_type,
		                     match_format, match_date, venue, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'scheduled')
	`

	_, err := s.db.Exec(query, m.ID, m.TeamID, m.TeamName, m.OpponentName,
		string(m.UserTeamType), m.Format, m.Date, m.Venue)
	return err
}

// SaveState 写入比赛当前状态 (阶段、时钟、比分)
func (s *MatchStore) SaveState(matchID string, view *models.MatchView) error {
	query := `
		UPDATE matches
		SET status = $2, clock_minute = $3, clock_second = $4,
		    score_home = $5, score_away = $6, updated_at = $7
		WHERE id = $1
	`

	_, err := s.db.Exec(query, matchID, string(view.Phase),
		view.Clock.Minute, view.Clock.Second,
		view.ScoreHome, view.ScoreAway, time.Now())
	return err
}

// AppendEvent 追加事件行。日志只追加，没有更新或删除路径。
func (s *MatchStore) AppendEvent(ev *models.MatchEvent) error {
	var detail []byte
	if ev.Detail != nil {
		var err error
		detail, err = json.Marshal(ev.Detail)
		if err != nil {
			return fmt.Errorf("failed to marshal event detail: %w", err)
		}
	}

	var playerID, playerName *string
	if ev.PlayerID != "" {
		playerID = &ev.PlayerID
	}
	if ev.PlayerName != "" {
		playerName = &ev.PlayerName
	}

	query := `
		INSERT INTO match_events (event_id, match_id, team_side, player_id, player_name,
		                          event_kind, minute, sequence_number, detail, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.db.Exec(query, ev.ID, ev.MatchID, string(ev.Side), playerID, playerName,
		string(ev.Kind), ev.Minute, ev.Sequence, detail, ev.RecordedAt)
	return err
}

// SaveLineup 写入某一方阵容
func (s *MatchStore) SaveLineup(matchID string, side models.TeamSide, view *models.LineupView) error {
	positions, err := json.Marshal(view.Positions)
	if err != nil {
		return fmt.Errorf("failed to marshal positions: %w", err)
	}
	substitutes, err := json.Marshal(view.Substitutes)
	if err != nil {
		return fmt.Errorf("failed to marshal substitutes: %w", err)
	}

	query := `
		INSERT INTO match_lineups (match_id, team_side, formation, positions, substitutes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (match_id, team_side)
		DO UPDATE SET
			formation = $3,
			positions = $4,
			substitutes = $5,
			updated_at = $6
	`

	_, err = s.db.Exec(query, matchID, string(side), view.Formation, positions, substitutes, time.Now())
	return err
}

// LoadMatch 读取单场比赛
func (s *MatchStore) LoadMatch(matchID string) (*models.Match, models.Phase, models.Clock, error) {
	query := `
		SELECT id, team_id, team_name, opponent_name, user_team_type, match_format,
		       match_date, venue, status, clock_minute, clock_second, created_at
		FROM matches
		WHERE id = $1
	`

	var r database.MatchRow
	row := s.db.QueryRow(query, matchID)
	if err := row.Scan(&r.ID, &r.TeamID, &r.TeamName, &r.OpponentName, &r.UserTeamType,
		&r.MatchFormat, &r.MatchDate, &r.Venue, &r.Status,
		&r.ClockMinute, &r.ClockSecond, &r.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, "", models.Clock{}, fmt.Errorf("%w: match %s", common.ErrNotFound, matchID)
		}
		return nil, "", models.Clock{}, err
	}

	m := models.Match{
		ID:           r.ID,
		TeamID:       r.TeamID,
		OpponentName: r.OpponentName,
		UserTeamType: models.TeamType(r.UserTeamType),
		Format:       r.MatchFormat,
		CreatedAt:    r.CreatedAt,
	}
	if r.TeamName != nil {
		m.TeamName = *r.TeamName
	}
	if r.Venue != nil {
		m.Venue = *r.Venue
	}
	if r.MatchDate != nil {
		m.Date = *r.MatchDate
	}

	clock := models.Clock{Minute: r.ClockMinute, Second: r.ClockSecond}
	return &m, models.Phase(r.Status), clock, nil
}

// LoadOpenMatches 读取所有未完赛的比赛 ID
func (s *MatchStore) LoadOpenMatches() ([]string, error) {
	query := `SELECT id FROM matches WHERE status != 'full_time' ORDER BY created_at`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// LoadLineups 读取一场比赛的双方阵容
func (s *MatchStore) LoadLineups(matchID string) (map[models.TeamSide]*models.LineupView, error) {
	query := `
		SELECT team_side, formation, positions, substitutes
		FROM match_lineups
		WHERE match_id = $1
	`

	rows, err := s.db.Query(query, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[models.TeamSide]*models.LineupView)
	for rows.Next() {
		var r database.MatchLineupRow
		if err := rows.Scan(&r.TeamSide, &r.Formation, &r.Positions, &r.Substitutes); err != nil {
			return nil, err
		}

		view := models.LineupView{Formation: r.Formation}
		if err := json.Unmarshal(r.Positions, &view.Positions); err != nil {
			return nil, fmt.Errorf("%w: lineup positions for %s/%s: %v", common.ErrValidation, matchID, r.TeamSide, err)
		}
		if err := json.Unmarshal(r.Substitutes, &view.Substitutes); err != nil {
			return nil, fmt.Errorf("%w: lineup substitutes for %s/%s: %v", common.ErrValidation, matchID, r.TeamSide, err)
		}
		out[models.TeamSide(r.TeamSide)] = &view
	}
	return out, rows.Err()
}

// LoadEvents 按追加顺序读取一场比赛的事件日志
func (s *MatchStore) LoadEvents(matchID string) ([]models.MatchEvent, error) {
	query := `
		SELECT event_id, match_id, team_side, player_id, player_name,
		       event_kind, minute, sequence_number, detail, recorded_at
		FROM match_events
		WHERE match_id = $1
		ORDER BY sequence_number ASC
	`

	rows, err := s.db.Query(query, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.MatchEvent
	for rows.Next() {
		var r database.MatchEventRow
		if err := rows.Scan(&r.EventID, &r.MatchID, &r.TeamSide, &r.PlayerID, &r.PlayerName,
			&r.EventKind, &r.Minute, &r.SequenceNumber, &r.Detail, &r.RecordedAt); err != nil {
			return nil, err
		}

		ev := models.MatchEvent{
			ID:         r.EventID,
			MatchID:    r.MatchID,
			Side:       models.TeamSide(r.TeamSide),
			Kind:       models.EventKind(r.EventKind),
			Minute:     r.Minute,
			Sequence:   r.SequenceNumber,
			RecordedAt: r.RecordedAt,
		}
		if r.PlayerID != nil {
			ev.PlayerID = *r.PlayerID
		}
		if r.PlayerName != nil {
			ev.PlayerName = *r.PlayerName
		}

		detail, err := unmarshalDetail(ev.Kind, r.Detail)
		if err != nil {
			return nil, fmt.Errorf("%w: event %s: %v", common.ErrValidation, ev.ID, err)
		}
		ev.Detail = detail

		events = append(events, ev)
	}
	return events, rows.Err()
}

func unmarshalDetail(kind models.EventKind, raw []byte) (models.EventDetail, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	switch kind {
	case models.EventGoal:
		var d models.GoalDetail
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case models.EventSubstitution:
		var d models.SubstitutionDetail
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, nil
}
