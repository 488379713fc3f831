// internal/report/websocket.go
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"go-arena-shooter/internal/component"
)

const (
	queueSize    = 64
	writeTimeout = 3 * time.Second
	retryDelay   = 2 * time.Second
)

// Progress — сообщение, которое уходит на сервер рейтинга
type Progress struct {
	SessionID string             `json:"session_id"`
	Character string             `json:"character"`
	Stage     Stage              `json:"stage"`
	Stats     component.GameStat `json:"stats"`
	SentAt    time.Time          `json:"sent_at"`
}

// WSReporter отправляет прогресс по websocket из отдельной горутины. Report никогда не
// блокирует: при переполнении очереди сообщение отбрасывается, при ошибке связи
// соединение переоткрывается при следующем сообщении.
type WSReporter struct {
	url       string
	sessionID string
	character string

	queue     chan Progress
	done      chan struct{}
	closeOnce sync.Once

	mu      sync.Mutex
	dropped int
}

var ErrClosed = errors.New("reporter closed")

func NewWSReporter(url, sessionID, character string) *WSReporter {
	return &WSReporter{
		url:       url,
		sessionID: sessionID,
		character: character,
		queue:     make(chan Progress, queueSize),
		done:      make(chan struct{}),
	}
}

// Report ставит прогресс в очередь
func (r *WSReporter) Report(stage Stage, stats component.GameStat) {
	msg := Progress{SessionID: r.sessionID, Character: r.character, Stage: stage, Stats: stats, SentAt: time.Now()}
	select {
	case <-r.done:
	case r.queue <- msg:
	default:
		r.mu.Lock()
		r.dropped++
		r.mu.Unlock()
		slog.Warn("progress dropped: queue full", "session", r.sessionID, "stage", stage)
	}
}

// Dropped — сколько сообщений отброшено из-за переполнения
func (r *WSReporter) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Run отправляет сообщения, пока не отменят ctx или не вызовут Close
func (r *WSReporter) Run(ctx context.Context) {
	var conn *websocket.Conn
	defer func() {
		if conn != nil {
			conn.Close(websocket.StatusNormalClosure, "shutdown")
		}
	}()
	var lastFail time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.done:
			return
		case msg := <-r.queue:
			if conn == nil {
				if time.Since(lastFail) < retryDelay {
					slog.Debug("progress dropped: relay unavailable", "stage", msg.Stage)
					continue
				}
				c, err := r.dial(ctx)
				if err != nil {
					lastFail = time.Now()
					slog.Warn("progress relay dial failed", "url", r.url, "err", err)
					continue
				}
				conn = c
			}
			if err := r.send(ctx, conn, msg); err != nil {
				slog.Warn("progress send failed", "stage", msg.Stage, "err", err)
				conn.Close(websocket.StatusInternalError, "write failed")
				conn = nil
				lastFail = time.Now()
			}
		}
	}
}

func (r *WSReporter) dial(ctx context.Context) (*websocket.Conn, error) {
	dctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	conn, _, err := websocket.Dial(dctx, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", r.url, err)
	}
	return conn, nil
}

func (r *WSReporter) send(ctx context.Context, conn *websocket.Conn, msg Progress) error {
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := wsjson.Write(wctx, conn, msg); err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}
	return nil
}

// Close останавливает отправку. Повторный вызов безопасен.
func (r *WSReporter) Close() error {
	err := ErrClosed
	r.closeOnce.Do(func() {
		close(r.done)
		err = nil
	})
	return err
}
