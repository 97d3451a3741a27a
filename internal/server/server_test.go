package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/config"
	"github.com/yigit/registrar/internal/pkg/websocket"
)

func TestServeAndShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	srv, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/v1/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)

	resp, err = http.Get("http://" + ln.Addr().String() + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "registrar_http_requests_total")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNewServerRejectsBadConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	_, err := NewServer(context.Background(), "")
	assert.Error(t, err)
}

func TestServeDeliversDueNotifications(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Notifications.DispatchInterval = "20ms"

	srv, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Serve(ctx, ln)

	conn, _, err := gorilla.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/api/v1/ws/notifications/S1", nil)
	require.NoError(t, err)
	defer conn.Close()

	notifications := srv.Dependencies().Services.NotificationService
	n, err := notifications.Schedule(ctx, &models.Notification{RecipientID: "S1", Message: "grades posted"})
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg websocket.Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, n.ID, msg.NotificationID)
	assert.Equal(t, "grades posted", msg.Content)

	require.Eventually(t, func() bool {
		got, err := notifications.GetNotification(context.Background(), n.ID)
		return err == nil && got.Sent
	}, 2*time.Second, 10*time.Millisecond)
}
