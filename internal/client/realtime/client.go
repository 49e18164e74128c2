package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event представляет одно push-событие об изменении entitlement'ов
type Event struct {
	Type   string `json:"type"`   // entitlement_changed
	UserID string `json:"user_id"`
	Reason string `json:"reason,omitempty"` // purchase, grant, revoke
}

// EventTypeEntitlementChanged — единственный тип события, который слушает клиент
const EventTypeEntitlementChanged = "entitlement_changed"

const (
	handshakeTimeout = 10 * time.Second
	// reconnectBase — начальная пауза перед переподключением, удваивается
	// до reconnectMax
	reconnectBase = time.Second
	reconnectMax  = time.Minute
	readLimit     = 64 * 1024
)

// Invalidator — реакция на событие, касающееся нашего пользователя.
// На практике это entitlement.Service.ClearCache.
type Invalidator interface {
	ClearCache(ctx context.Context)
}

// Client держит websocket-подписку на изменения entitlement'ов и
// инвалидирует локальный кэш, когда событие называет нашего пользователя.
// События про чужих пользователей игнорируются.
type Client struct {
	url         string
	userID      string
	invalidator Invalidator
	logger      *slog.Logger

	baseDelay time.Duration
	maxDelay  time.Duration

	mu   sync.Mutex
	conn *websocket.Conn
	done chan struct{}
}

// NewClient создает realtime-клиент. baseURL — HTTP-адрес backend'а,
// он конвертируется в ws/wss.
func NewClient(baseURL, userID string, invalidator Invalidator, logger *slog.Logger) *Client {
	wsURL := baseURL
	switch {
	case strings.HasPrefix(wsURL, "https"):
		wsURL = "wss" + wsURL[len("https"):]
	case strings.HasPrefix(wsURL, "http"):
		wsURL = "ws" + wsURL[len("http"):]
	}
	wsURL += "/realtime/entitlements"

	return &Client{
		url:         wsURL,
		userID:      userID,
		invalidator: invalidator,
		logger:      logger,
		baseDelay:   reconnectBase,
		maxDelay:    reconnectMax,
	}
}

// Run connects and listens until the context is canceled. Разрывы соединения
// переживаются переподключением с экспоненциальной паузой.
func (c *Client) Run(ctx context.Context) {
	delay := c.baseDelay
	for {
		connected, err := c.listen(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn("realtime connection lost", "error", err, "retry_in", delay)
		}
		// Состоявшееся соединение обнуляет backoff: удвоение наказывает
		// только подряд идущие неудачные dial'ы
		if connected {
			delay = c.baseDelay
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		delay *= 2
		if delay > c.maxDelay {
			delay = c.maxDelay
		}
	}
}

// Close завершает текущее соединение
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	err := c.conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
	_ = c.conn.Close()
	c.conn = nil
	if err != nil {
		return fmt.Errorf("close message: %w", err)
	}
	return nil
}

// listen устанавливает соединение и читает события до первой ошибки.
// connected сообщает, дошло ли дело до установленного соединения.
func (c *Client) listen(ctx context.Context) (connected bool, _ error) {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}

	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return false, fmt.Errorf("websocket dial: %w", err)
	}
	conn.SetReadLimit(readLimit)

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	c.logger.Info("realtime channel connected")

	// Разрыв по отмене контекста
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return true, fmt.Errorf("websocket read: %w", err)
		}
		c.handleMessage(ctx, message)
	}
}

// handleMessage разбирает событие и инвалидирует кэш, если оно наше
func (c *Client) handleMessage(ctx context.Context, message []byte) {
	var event Event
	if err := json.Unmarshal(message, &event); err != nil {
		c.logger.Debug("malformed realtime event", "error", err)
		return
	}

	if event.Type != EventTypeEntitlementChanged {
		return
	}
	// Событие фильтруется по identity: чужие изменения нас не касаются
	if event.UserID != c.userID {
		return
	}

	c.logger.Info("entitlement change pushed", "reason", event.Reason)
	c.invalidator.ClearCache(ctx)
}
