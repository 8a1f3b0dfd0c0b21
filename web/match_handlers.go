package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"matchday-service/pkg/common"
	"matchday-service/pkg/engine"
	"matchday-service/pkg/models"
	"matchday-service/services"
)

// writeJSON 输出 JSON 响应
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError 将错误分类映射到 HTTP 状态
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal"

	switch {
	case errors.Is(err, common.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, common.ErrValidation):
		status, code = http.StatusBadRequest, "validation"
	case errors.Is(err, common.ErrUnknownFormat):
		status, code = http.StatusBadRequest, "unknown_format"
	case errors.Is(err, common.ErrUnknownSlot):
		status, code = http.StatusBadRequest, "unknown_slot"
	case errors.Is(err, common.ErrInvalidTransition):
		status, code = http.StatusConflict, "invalid_transition"
	case errors.Is(err, common.ErrMatchClosed):
		status, code = http.StatusConflict, "match_closed"
	case errors.Is(err, common.ErrDuplicatePlayer):
		status, code = http.StatusConflict, "duplicate_player"
	case errors.Is(err, common.ErrBenchFull):
		status, code = http.StatusConflict, "bench_full"
	}

	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"code":    code,
		"error":   err.Error(),
	})
}

func writeView(w http.ResponseWriter, view *models.MatchView) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"match":   view,
	})
}

// handleCreateMatch 创建比赛
func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var in services.CreateMatchInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, common.NewAppError("validation", "invalid request body", common.ErrValidation))
		return
	}

	view, err := s.registry.CreateMatch(in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"match":   view,
	})
}

// handleGetMatch 查询比赛当前视图
func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["match_id"]

	view, err := s.registry.GetMatchView(matchID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeView(w, view)
}

// handleTimeline 查询时间线，?order=asc|desc (默认 asc)
func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["match_id"]

	order := engine.OrderAsc
	if r.URL.Query().Get("order") == "desc" {
		order = engine.OrderDesc
	}

	timeline, err := s.registry.Timeline(matchID, order)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(timeline),
		"events":  timeline,
	})
}

func (s *Server) handleStartMatch(w http.ResponseWriter, r *http.Request) {
	s.phaseCommand(w, r, s.registry.StartMatch)
}

func (s *Server) handlePauseResume(w http.ResponseWriter, r *http.Request) {
	s.phaseCommand(w, r, s.registry.PauseResumeMatch)
}

func (s *Server) handleCallHalfTime(w http.ResponseWriter, r *http.Request) {
	s.phaseCommand(w, r, s.registry.CallHalfTime)
}

func (s *Server) handleStartSecondHalf(w http.ResponseWriter, r *http.Request) {
	s.phaseCommand(w, r, s.registry.StartSecondHalf)
}

func (s *Server) handleCallFullTime(w http.ResponseWriter, r *http.Request) {
	s.phaseCommand(w, r, s.registry.CallFullTime)
}

func (s *Server) phaseCommand(w http.ResponseWriter, r *http.Request, cmd func(string) (*models.MatchView, error)) {
	matchID := mux.Vars(r)["match_id"]

	view, err := cmd(matchID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeView(w, view)
}

// recordEventRequest 记录事件的请求体。detail 按 event_kind 解析
// 为对应的载荷结构。
type recordEventRequest struct {
	Side       models.TeamSide  `json:"team_side"`
	PlayerID   string           `json:"player_id"`
	PlayerName string           `json:"player_name"`
	Kind       models.EventKind `json:"event_kind"`
	Minute     *int             `json:"minute"`
	Detail     json.RawMessage  `json:"detail"`
}

// handleRecordEvent 记录比赛事件
func (s *Server) handleRecordEvent(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["match_id"]

	var req recordEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.NewAppError("validation", "invalid request body", common.ErrValidation))
		return
	}

	detail, err := decodeDetail(req.Kind, req.Detail)
	if err != nil {
		writeError(w, err)
		return
	}

	view, err := s.registry.RecordEvent(matchID, engine.EventInput{
		Side:       req.Side,
		PlayerID:   req.PlayerID,
		PlayerName: req.PlayerName,
		Kind:       req.Kind,
		Minute:     req.Minute,
		Detail:     detail,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeView(w, view)
}

func decodeDetail(kind models.EventKind, raw json.RawMessage) (models.EventDetail, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	switch kind {
	case models.EventGoal:
		var d models.GoalDetail
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, common.NewAppError("validation", "invalid goal detail", common.ErrValidation)
		}
		return d, nil
	case models.EventSubstitution:
		var d models.SubstitutionDetail
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, common.NewAppError("validation", "invalid substitution detail", common.ErrValidation)
		}
		return d, nil
	}
	return nil, nil
}

// handleHealth 健康检查
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.startedAt).String(),
	})
}

// handleStats 服务统计
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"matches":     len(s.registry.MatchIDs()),
		"live_clocks": s.registry.RunnerCount(),
		"ws_clients":  s.wsHub.ClientCount(),
		"environment": s.config.Environment,
	})
}
