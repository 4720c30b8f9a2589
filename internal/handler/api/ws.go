package api

import (
	"net/http"
	"time"

	"github.com/Vivesh2911/NeoWallet/internal/session"
	xlogger "github.com/Vivesh2911/NeoWallet/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

// SessionFeedHandler streams session state snapshots over a WebSocket so the
// UI can reflect balance changes without polling.
type SessionFeedHandler struct {
	logger   *xlogger.Logger
	sessions *session.Store
	upgrader websocket.Upgrader
}

func NewSessionFeedHandler(lgr *xlogger.Logger, sessions *session.Store) *SessionFeedHandler {
	return &SessionFeedHandler{
		logger:   lgr,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *SessionFeedHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/session", h.Feed)
}

func (h *SessionFeedHandler) Feed(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	updates := h.sessions.Subscribe()
	defer h.sessions.Unsubscribe(updates)

	// Drain client frames so close handshakes are noticed.
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Current state first, then every change.
	if err := h.writeState(conn, h.sessions.Snapshot()); err != nil {
		return nil
	}

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case <-clientGone:
			return nil
		case state := <-updates:
			if err := h.writeState(conn, state); err != nil {
				return nil
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.logger.Debug("session feed ping failed", xlogger.Error(err))
				return nil
			}
		}
	}
}

func (h *SessionFeedHandler) writeState(conn *websocket.Conn, state session.State) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteJSON(state); err != nil {
		h.logger.Debug("session feed write failed", xlogger.Error(err))
		return err
	}
	return nil
}
