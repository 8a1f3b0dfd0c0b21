package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"

	"matchday-service/config"
	"matchday-service/pkg/formation"
	"matchday-service/services"
)

type Server struct {
	config     *config.Config
	registry   *services.MatchRegistry
	catalog    *formation.Catalog
	wsHub      *Hub
	httpServer *http.Server
	upgrader   websocket.Upgrader
	startedAt  time.Time
}

func NewServer(cfg *config.Config, registry *services.MatchRegistry, catalog *formation.Catalog, hub *Hub) *Server {
	return &Server{
		config:    cfg,
		registry:  registry,
		catalog:   catalog,
		wsHub:     hub,
		startedAt: time.Now(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // 允许所有来源(生产环境需要限制)
			},
		},
	}
}

func (s *Server) Start() error {
	router := mux.NewRouter()

	// API路由
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/stats", s.handleStats).Methods("GET")

	api.HandleFunc("/formations", s.handleListFormations).Methods("GET")

	api.HandleFunc("/matches", s.handleCreateMatch).Methods("POST")
	api.HandleFunc("/matches/{match_id}", s.handleGetMatch).Methods("GET")
	api.HandleFunc("/matches/{match_id}/timeline", s.handleTimeline).Methods("GET")

	api.HandleFunc("/matches/{match_id}/start", s.handleStartMatch).Methods("POST")
	api.HandleFunc("/matches/{match_id}/pause", s.handlePauseResume).Methods("POST")
	api.HandleFunc("/matches/{match_id}/half-time", s.handleCallHalfTime).Methods("POST")
	api.HandleFunc("/matches/{match_id}/second-half", s.handleStartSecondHalf).Methods("POST")
	api.HandleFunc("/matches/{match_id}/full-time", s.handleCallFullTime).Methods("POST")
	api.HandleFunc("/matches/{match_id}/events", s.handleRecordEvent).Methods("POST")

	api.HandleFunc("/matches/{match_id}/lineup/{side}/formation", s.handleChangeFormation).Methods("POST")
	api.HandleFunc("/matches/{match_id}/lineup/{side}/assign", s.handleAssignPlayer).Methods("POST")
	api.HandleFunc("/matches/{match_id}/lineup/{side}/substitutes", s.handleAddSubstitute).Methods("POST")
	api.HandleFunc("/matches/{match_id}/lineup/{side}/substitutes/{player_id}", s.handleRemoveSubstitute).Methods("DELETE")

	// WebSocket路由
	router.HandleFunc("/ws", s.handleWebSocket)

	// CORS配置
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
