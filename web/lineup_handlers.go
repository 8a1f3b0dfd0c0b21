package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"matchday-service/pkg/common"
	"matchday-service/pkg/models"
)

func sideFromPath(r *http.Request) (models.TeamSide, error) {
	side := models.TeamSide(mux.Vars(r)["side"])
	if side != models.SideUser && side != models.SideOpposition {
		return "", common.NewAppError("validation", "side must be user or opposition", common.ErrValidation)
	}
	return side, nil
}

// handleChangeFormation 切换某一方阵型，已有阵容清空
func (s *Server) handleChangeFormation(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["match_id"]
	side, err := sideFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Formation string `json:"formation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.NewAppError("validation", "invalid request body", common.ErrValidation))
		return
	}

	view, err := s.registry.ChangeFormation(matchID, side, req.Formation)
	if err != nil {
		writeError(w, err)
		return
	}
	writeView(w, view)
}

// handleAssignPlayer 将球员安排到指定位置
func (s *Server) handleAssignPlayer(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["match_id"]
	side, err := sideFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		SlotID   string `json:"slot_id"`
		PlayerID string `json:"player_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.NewAppError("validation", "invalid request body", common.ErrValidation))
		return
	}
	if req.SlotID == "" || req.PlayerID == "" {
		writeError(w, common.NewAppError("validation", "slot_id and player_id required", common.ErrValidation))
		return
	}

	view, err := s.registry.AssignPlayer(matchID, side, req.SlotID, req.PlayerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeView(w, view)
}

// handleAddSubstitute 替补席追加球员
func (s *Server) handleAddSubstitute(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["match_id"]
	side, err := sideFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		PlayerID string `json:"player_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.NewAppError("validation", "invalid request body", common.ErrValidation))
		return
	}
	if req.PlayerID == "" {
		writeError(w, common.NewAppError("validation", "player_id required", common.ErrValidation))
		return
	}

	view, err := s.registry.AddSubstitute(matchID, side, req.PlayerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeView(w, view)
}

// handleRemoveSubstitute 替补席移除球员，球员不在席上时也返回成功
func (s *Server) handleRemoveSubstitute(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	matchID := vars["match_id"]
	playerID := vars["player_id"]
	side, err := sideFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	view, err := s.registry.RemoveSubstitute(matchID, side, playerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeView(w, view)
}
