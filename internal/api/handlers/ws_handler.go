package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/paulamunoz06/gestionproyectos/internal/events"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum number of snapshots to buffer before forcing a send.
	batchSize = 50

	// Maximum time to wait before sending buffered snapshots.
	flushFrequency = 100 * time.Millisecond

	clientBuffer = 200
)

// ProjectFeed pushes every committed lifecycle change to connected desktop
// clients as JSON arrays of project snapshots.
type ProjectFeed struct {
	upgrader websocket.Upgrader
	log      *zap.Logger

	mu      sync.Mutex
	clients map[chan []byte]struct{}
}

func NewProjectFeed(allowedOrigins []string, log *zap.Logger) *ProjectFeed {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &ProjectFeed{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				// desktop clients send no Origin
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
		log:     log,
		clients: make(map[chan []byte]struct{}),
	}
}

// ProjectChanged fans snapshot out to every client. Slow clients miss
// updates rather than block the caller.
func (f *ProjectFeed) ProjectChanged(snapshot events.ProjectSnapshot) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		f.log.Error("encode project snapshot", zap.Error(err))
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.clients {
		select {
		case ch <- data:
		default:
			f.log.Warn("project feed client lagging, snapshot skipped", zap.String("project_id", snapshot.ID))
		}
	}
}

func (f *ProjectFeed) subscribe() chan []byte {
	ch := make(chan []byte, clientBuffer)
	f.mu.Lock()
	f.clients[ch] = struct{}{}
	f.mu.Unlock()
	return ch
}

func (f *ProjectFeed) unsubscribe(ch chan []byte) {
	f.mu.Lock()
	delete(f.clients, ch)
	f.mu.Unlock()
}

// Clients returns the number of connected clients.
func (f *ProjectFeed) Clients() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

// Serve godoc
// @Summary Live feed of project lifecycle changes
// @Tags coordinator
// @Security BearerAuth
// @Router /ws/projects [get]
func (f *ProjectFeed) Serve(c *gin.Context) {
	conn, err := f.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		f.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	updates := f.subscribe()
	defer f.unsubscribe(updates)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go f.write(ctx, cancel, conn, updates)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				f.log.Info("project feed client closed", zap.Error(err))
			}
			return
		}
	}
}

func (f *ProjectFeed) write(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, updates <-chan []byte) {
	defer func() { _ = conn.Close() }()

	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()
	flushTicker := time.NewTicker(flushFrequency)
	defer flushTicker.Stop()

	var buffer []json.RawMessage
	flush := func() error {
		if len(buffer) == 0 {
			return nil
		}
		batch, err := json.Marshal(buffer)
		if err != nil {
			return err
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, batch); err != nil {
			return err
		}
		buffer = buffer[:0]
		return nil
	}

	for {
		select {
		case msg := <-updates:
			buffer = append(buffer, json.RawMessage(msg))
			if len(buffer) >= batchSize {
				if err := flush(); err != nil {
					cancel()
					return
				}
			}
		case <-flushTicker.C:
			if err := flush(); err != nil {
				cancel()
				return
			}
		case <-pingTicker.C:
			if err := flush(); err != nil {
				cancel()
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				cancel()
				return
			}
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		}
	}
}
