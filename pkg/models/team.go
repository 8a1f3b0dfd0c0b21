package models

// Team 球队管理服务返回的球队信息 (外部协作方，只读)
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// Player 球员信息
type Player struct {
	ID          string `json:"player_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	SquadNumber int    `json:"squad_number"`
	Position    string `json:"position"`
}

// HasPlayer 判断球员是否属于该球队名册
func (t *Team) HasPlayer(playerID string) bool {
	for _, p := range t.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
