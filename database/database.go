package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Connect 连接到数据库
func Connect(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

// Migrate 运行数据库迁移
func Migrate(db *sql.DB) error {
	migrations := []string{
		// 比赛表
		`CREATE TABLE IF NOT EXISTS matches (
			id VARCHAR(100) PRIMARY KEY,
			team_id VARCHAR(100) NOT NULL,
			team_name VARCHAR(200),
			opponent_name VARCHAR(200) NOT NULL,
			user_team_type VARCHAR(10) NOT NULL,
			match_format VARCHAR(20) NOT NULL,
			match_date TIMESTAMP,
			venue VARCHAR(200),
			status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
			clock_minute INTEGER NOT NULL DEFAULT 0,
			clock_second INTEGER NOT NULL DEFAULT 0,
			score_home INTEGER NOT NULL DEFAULT 0,
			score_away INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_team_id ON matches(team_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_status ON matches(status)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_date ON matches(match_date)`,

		// 比赛事件表 (追加写入，不更新不删除)
		`CREATE TABLE IF NOT EXISTS match_events (
			id BIGSERIAL PRIMARY KEY,
			event_id VARCHAR(120) UNIQUE NOT NULL,
			match_id VARCHAR(100) NOT NULL REFERENCES matches(id),
			team_side VARCHAR(20) NOT NULL,
			player_id VARCHAR(100),
			player_name VARCHAR(200),
			event_kind VARCHAR(30) NOT NULL,
			minute INTEGER NOT NULL,
			sequence_number INTEGER NOT NULL,
			detail JSONB,
			recorded_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_match_events_match_id ON match_events(match_id)`,
		`CREATE INDEX IF NOT EXISTS idx_match_events_kind ON match_events(event_kind)`,

		// 阵容表，每场比赛每方一行
		`CREATE TABLE IF NOT EXISTS match_lineups (
			match_id VARCHAR(100) NOT NULL REFERENCES matches(id),
			team_side VARCHAR(20) NOT NULL,
			formation VARCHAR(20) NOT NULL,
			positions JSONB NOT NULL DEFAULT '{}',
			substitutes JSONB NOT NULL DEFAULT '[]',
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (match_id, team_side)
		)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
