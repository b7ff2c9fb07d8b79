package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paulamunoz06/gestionproyectos/internal/api/handlers"
	"github.com/paulamunoz06/gestionproyectos/internal/events"
)

func startFeed(t *testing.T, origins []string) (*handlers.ProjectFeed, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	feed := handlers.NewProjectFeed(origins, zap.NewNop())
	r := gin.New()
	r.GET("/ws/projects", feed.Serve)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return feed, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/projects"
}

func TestProjectFeedBroadcastsSnapshots(t *testing.T) {
	feed, url := startFeed(t, nil)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return feed.Clients() == 1 }, time.Second, 10*time.Millisecond)

	feed.ProjectChanged(events.ProjectSnapshot{ID: "p1", State: "ACCEPTED"})
	feed.ProjectChanged(events.ProjectSnapshot{ID: "p2", State: "REJECTED"})

	var got []events.ProjectSnapshot
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for len(got) < 2 {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		var batch []events.ProjectSnapshot
		require.NoError(t, json.Unmarshal(data, &batch))
		got = append(got, batch...)
	}
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "REJECTED", got[1].State)
}

func TestProjectFeedDropsClosedClients(t *testing.T) {
	feed, url := startFeed(t, nil)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return feed.Clients() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return feed.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestProjectFeedChecksOrigin(t *testing.T) {
	_, url := startFeed(t, []string{"https://desk.example"})

	header := http.Header{"Origin": []string{"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header.Set("Origin", "https://desk.example")
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	conn.Close()
}
