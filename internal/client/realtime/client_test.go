package realtime

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// countingInvalidator считает вызовы ClearCache
type countingInvalidator struct {
	calls atomic.Int32
}

func (i *countingInvalidator) ClearCache(ctx context.Context) {
	i.calls.Add(1)
}

// wsTestServer поднимает websocket-эндпоинт, отправляющий заданные сообщения
func wsTestServer(t *testing.T, messages []string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/realtime/entitlements", r.URL.Path)

		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		for _, msg := range messages {
			require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
		}

		// Держим соединение открытым, пока клиент не уйдет
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func TestClient_InvalidatesOnOwnEvent(t *testing.T) {
	server := wsTestServer(t, []string{
		`{"type":"entitlement_changed","user_id":"user-1","reason":"purchase"}`,
	})
	defer server.Close()

	invalidator := &countingInvalidator{}
	client := NewClient(server.URL, "user-1", invalidator, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Run(ctx)

	require.Eventually(t, func() bool {
		return invalidator.calls.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestClient_IgnoresForeignAndUnknownEvents(t *testing.T) {
	server := wsTestServer(t, []string{
		`{"type":"entitlement_changed","user_id":"someone-else"}`,
		`{"type":"profile_changed","user_id":"user-1"}`,
		`not json at all`,
		`{"type":"entitlement_changed","user_id":"user-1","reason":"grant"}`,
	})
	defer server.Close()

	invalidator := &countingInvalidator{}
	client := NewClient(server.URL, "user-1", invalidator, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Run(ctx)

	// Сработало только последнее событие: чужие, незнакомые и битые
	// сообщения игнорируются
	require.Eventually(t, func() bool {
		return invalidator.calls.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), invalidator.calls.Load())
}

func TestClient_ReconnectDelayResetsAfterConnection(t *testing.T) {
	var connections atomic.Int32
	upgrader := websocket.Upgrader{}

	// Сервер рвет каждое соединение сразу после handshake'а
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		connections.Add(1)
		conn.Close()
	}))
	defer server.Close()

	client := NewClient(server.URL, "user-1", &countingInvalidator{}, testLogger())
	client.baseDelay = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Run(ctx)

	// Пауза возвращается к базовой после каждого состоявшегося соединения:
	// при монотонном удвоении десятое переподключение не уложилось бы в окно
	require.Eventually(t, func() bool {
		return connections.Load() >= 10
	}, 500*time.Millisecond, 5*time.Millisecond)
}

func TestClient_URLConversion(t *testing.T) {
	client := NewClient("https://api.platemate.app", "u", &countingInvalidator{}, testLogger())
	assert.Equal(t, "wss://api.platemate.app/realtime/entitlements", client.url)

	client = NewClient("http://localhost:8080", "u", &countingInvalidator{}, testLogger())
	assert.Equal(t, "ws://localhost:8080/realtime/entitlements", client.url)
}
