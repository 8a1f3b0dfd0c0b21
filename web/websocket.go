package web

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"matchday-service/pkg/models"
)

// WSMessage WebSocket直播帧
type WSMessage struct {
	Type      string            `json:"type"`
	MatchID   string            `json:"match_id,omitempty"`
	Phase     models.Phase      `json:"phase,omitempty"`
	Clock     *models.Clock     `json:"clock,omitempty"`
	ScoreHome int               `json:"score_home"`
	ScoreAway int               `json:"score_away"`
	LastEvent *models.MatchEvent `json:"last_event,omitempty"`
}

// Client WebSocket客户端
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	matchIDs map[string]bool // 比赛过滤器，为空时接收全部
}

// Hub WebSocket Hub，向所有直播观众广播比赛视图
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *WSMessage
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub 创建新的Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *WSMessage, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run 运行Hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("Client registered. Total clients: %d", len(h.clients))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("Client unregistered. Total clients: %d", len(h.clients))

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				log.Printf("Failed to marshal WS message: %v", err)
				continue
			}

			h.mu.Lock()
			for client := range h.clients {
				if !client.shouldReceive(message) {
					continue
				}

				select {
				case client.send <- data:
				default:
					// 发不动的客户端直接踢掉
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastView 实现 services.ViewBroadcaster: 每条成功命令和每次
// 时钟节拍后推送最新派生视图
func (h *Hub) BroadcastView(view *models.MatchView) {
	msg := &WSMessage{
		Type:      "match_view",
		MatchID:   view.MatchID,
		Phase:     view.Phase,
		Clock:     &view.Clock,
		ScoreHome: view.ScoreHome,
		ScoreAway: view.ScoreAway,
	}
	if n := len(view.Timeline); n > 0 {
		msg.LastEvent = &view.Timeline[n-1]
	}

	select {
	case h.broadcast <- msg:
	default:
		// 广播队列满时丢帧，下一帧马上就来
	}
}

// ClientCount 当前连接数
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (c *Client) shouldReceive(msg *WSMessage) bool {
	if len(c.matchIDs) == 0 {
		return true
	}
	return c.matchIDs[msg.MatchID]
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for data := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		// 只读取以检测断开，客户端不发命令
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// handleWebSocket 升级连接并注册到 Hub，?match_id= 过滤单场比赛
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:      s.wsHub,
		conn:     conn,
		send:     make(chan []byte, 64),
		matchIDs: make(map[string]bool),
	}
	if matchID := r.URL.Query().Get("match_id"); matchID != "" {
		client.matchIDs[matchID] = true
	}

	s.wsHub.register <- client

	go client.writePump()
	go client.readPump()
}
