package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"smartfurnace/internal/repository"
	"smartfurnace/internal/service"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000 // 10s in ms
)

// Message types sent on the stream.
const (
	wsTypeEvaluation = "evaluation"
	wsTypeError      = "error"
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Upgrader for HTTP -> WebSocket. Consider tightening CheckOrigin in production.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origins for production
}

// @Summary      Evaluation stream
// @Description  WebSocket. Sends {"type":"evaluation","data":Reading} immediately and then every interval. With ?schedule= the named schedule is evaluated live; otherwise the tracker's latest reading is relayed.
// @Tags         stream
// @Param        schedule     query  string  false  "Schedule name"
// @Param        interval     query  string  false  "Go duration, up to 10s"  example(2s)
// @Param        interval_ms  query  int     false  "Milliseconds, up to 10000"
// @Success      101
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)
	schedule := strings.TrimSpace(c.Query("schedule"))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	// Prepare periodic writers: readings and pings.
	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	// Send the first reading immediately.
	if err := h.sendReading(c.Request.Context(), conn, schedule); err != nil {
		// If initial send fails, log and close the connection.
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	// Writer/select loop.
	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendReading(c.Request.Context(), conn, schedule); err != nil {
				// write failures and unknown schedules end the stream
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// Helper: parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	interval := defaultInterval

	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return interval
}

// Helper: startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// Helper: sendReading evaluates the named schedule, or relays the tracker's
// latest reading when name is empty, and writes it with a write deadline.
// Evaluation failures are sent as error envelopes; the returned error ends
// the stream and is set for write failures and unknown schedules.
func (h *Handler) sendReading(ctx context.Context, conn *websocket.Conn, name string) error {
	env, fatal := h.nextReading(ctx, name)
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(env); err != nil {
		return err
	}
	return fatal
}

func (h *Handler) nextReading(ctx context.Context, name string) (wsEnvelope, error) {
	if name == "" {
		r, ok := h.services.Tracker.Latest()
		if !ok {
			return wsEnvelope{Type: wsTypeError, Error: errNoReading}, nil
		}
		return wsEnvelope{Type: wsTypeEvaluation, Data: r}, nil
	}

	now := time.Now()
	ev, err := h.services.Evaluator.Evaluate(ctx, name, now)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_evaluate_failed", "schedule", name, "err", err)
		}
		env := wsEnvelope{Type: wsTypeError, Error: err.Error()}
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return env, err
		}
		return env, nil
	}
	return wsEnvelope{Type: wsTypeEvaluation, Data: service.Reading{
		Schedule:   name,
		At:         now.UTC(),
		Evaluation: ev,
	}}, nil
}
