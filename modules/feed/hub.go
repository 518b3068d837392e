package feed

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// 개발용 - 모든 origin 허용
		// 프로덕션에서는 특정 도메인만 허용하도록 수정
		return true
	},
}

// PromptEvent - 프롬프트 저장 시 브로드캐스트되는 이벤트
type PromptEvent struct {
	Type      string    `json:"type"` // "prompt_saved"
	Prompt    string    `json:"prompt"`
	Theme     string    `json:"theme"`
	CreatedAt time.Time `json:"createdAt"`
}

// client - 연결된 클라이언트 정보
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub - 최근 프롬프트 라이브 피드 허브
// 프롬프트가 저장될 때마다 연결된 모든 클라이언트에게 전송한다
type Hub struct {
	clients map[*client]bool
	mutex   sync.RWMutex

	totalConnections int
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]bool),
	}
}

// HandleWebSocket - GET /ws 연결 처리
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, 256),
	}

	h.mutex.Lock()
	h.clients[c] = true
	h.totalConnections++
	clientCount := len(h.clients)
	h.mutex.Unlock()

	log.Printf("👤 Feed client connected (Clients: %d, Total: %d)", clientCount, h.totalConnections)

	go c.writePump()
	go h.readPump(c)
}

// BroadcastPrompt - 저장된 프롬프트를 모든 클라이언트에게 전송
func (h *Hub) BroadcastPrompt(prompt, themeKey string) {
	event := PromptEvent{
		Type:      "prompt_saved",
		Prompt:    prompt,
		Theme:     themeKey,
		CreatedAt: time.Now().UTC(),
	}

	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling prompt event: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for c := range h.clients {
		select {
		case c.send <- messageBytes:
		default:
			// 느린 클라이언트는 제거
			close(c.send)
			delete(h.clients, c)
		}
	}
}

// ClientCount - 현재 연결 수 (metrics용)
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// TotalConnections - 누적 연결 수 (metrics용)
func (h *Hub) TotalConnections() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.totalConnections
}

// removeClient - 클라이언트 제거
func (h *Hub) removeClient(c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, exists := h.clients[c]; exists {
		close(c.send)
		delete(h.clients, c)
		log.Printf("👋 Feed client disconnected (Remaining: %d)", len(h.clients))
	}
}

// readPump - 피드는 서버→클라이언트 단방향. 읽기는 close 감지용
func (h *Hub) readPump(c *client) {
	defer func() {
		h.removeClient(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump - 클라이언트로 메시지 쓰기
func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
