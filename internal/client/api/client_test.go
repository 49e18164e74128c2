package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platemate/platemate-sync/internal/client/cache"
	"github.com/platemate/platemate-sync/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	assert.Nil(t, client.respCache)
}

// TestClient_CreateRecord проверяет успешное создание записи
func TestClient_CreateRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем метод и путь
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/food_logs/create", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		// Декодируем запрос
		var req api.RecordPayload
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		assert.Equal(t, "local-uuid-1", req.ClientID)
		assert.Equal(t, "food_logs", req.EntityType)

		w.WriteHeader(http.StatusCreated)
		resp := api.CreateRecordResponse{
			ID:      "srv-42",
			Message: "created",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	payload := api.RecordPayload{
		ClientID:     "local-uuid-1",
		EntityType:   "food_logs",
		Data:         map[string]any{"name": "oatmeal", "calories": 320.0},
		LastModified: time.Now().UnixMilli(),
	}

	resp, err := client.CreateRecord(context.Background(), "token-123", "food_logs", payload)

	require.NoError(t, err)
	assert.Equal(t, "srv-42", resp.ID)
	assert.Equal(t, "created", resp.Message)
}

// TestClient_UpdateRecord проверяет обновление записи по серверному ID
func TestClient_UpdateRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/water/update/srv-7", r.URL.Path)

		resp := api.UpdateRecordResponse{ID: "srv-7", Message: "updated"}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.UpdateRecord(context.Background(), "token", "water", "srv-7", api.RecordPayload{
		ClientID:   "local-uuid-7",
		EntityType: "water",
	})

	require.NoError(t, err)
	assert.Equal(t, "srv-7", resp.ID)
}

// TestClient_DeleteRecord проверяет удаление записи
func TestClient_DeleteRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/exercises/delete/srv-9", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.DeleteRecordResponse{Message: "deleted"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.DeleteRecord(context.Background(), "token", "exercises", "srv-9")
	require.NoError(t, err)
}

// TestClient_ErrorClassification проверяет типизацию ошибок по статус-коду
func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		check      func(t *testing.T, err error)
		name       string
		statusCode int
	}{
		{
			name:       "401 is an authentication error",
			statusCode: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrAuthentication)
				assert.False(t, IsTransient(err))
			},
		},
		{
			name:       "429 is transient",
			statusCode: http.StatusTooManyRequests,
			check: func(t *testing.T, err error) {
				assert.True(t, IsTransient(err))
			},
		},
		{
			name:       "503 is transient",
			statusCode: http.StatusServiceUnavailable,
			check: func(t *testing.T, err error) {
				assert.True(t, IsTransient(err))
			},
		},
		{
			name:       "409 is a plain status error",
			statusCode: http.StatusConflict,
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
				assert.Equal(t, "duplicate entry", statusErr.Message)
				assert.False(t, IsTransient(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "duplicate entry"})
			}))
			defer server.Close()

			client := NewClient(server.URL)

			_, err := client.CreateRecord(context.Background(), "token", "food_logs", api.RecordPayload{})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

// TestClient_TransportErrorIsTransient проверяет, что сетевой сбой ретраибелен
func TestClient_TransportErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	// Закрываем сервер сразу: connection refused
	server.Close()

	client := NewClient(server.URL)

	_, err := client.CreateRecord(context.Background(), "token", "food_logs", api.RecordPayload{})
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

// TestClient_GetProfile проверяет получение и маппинг профиля
func TestClient_GetProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/users/user-1", r.URL.Path)

		resp := api.ProfileResponse{
			ID:           "user-999", // сервер иногда отдает чужой id
			Email:        "a@b.c",
			FirstName:    "Ana",
			Height:       170,
			Weight:       64.5,
			TargetWeight: 60,
			UpdatedAt:    1700000000000,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.GetProfile(context.Background(), "token", "user-1")
	require.NoError(t, err)

	// identity вызывающего перекрывает id из тела ответа
	profile := ProfileFromResponse(resp, "user-1")
	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, "Ana", profile.FirstName)
	assert.Equal(t, 64.5, profile.Weight)
	assert.Equal(t, time.UnixMilli(1700000000000), profile.UpdatedAt)
}

// TestClient_GetServiceToken проверяет получение токена downstream-сервиса
func TestClient_GetServiceToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/fatsecret/get-token", r.URL.Path)
		assert.Equal(t, "Bearer identity-token", r.Header.Get("Authorization"))

		resp := api.TokenResponse{Token: "svc-token", TokenType: "Bearer", ExpiresIn: 3600}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.GetServiceToken(context.Background(), "identity-token", "fatsecret")
	require.NoError(t, err)
	assert.Equal(t, "svc-token", resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

// TestClient_ValidateSubscription проверяет запрос статуса подписки
func TestClient_ValidateSubscription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/subscriptions/validate", r.URL.Path)

		resp := api.ValidateSubscriptionResponse{
			Status:         "free_trial",
			TrialStartDate: "2026-08-01T00:00:00Z",
			TrialEndDate:   "2026-08-21T00:00:00Z",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.ValidateSubscription(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "free_trial", resp.Status)
	assert.True(t, resp.ExtendedTrialGranted == false)
}

// TestClient_Health проверяет health-пробу
func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.Health(context.Background()))
}

// TestClient_CachedSearch проверяет, что повторный поиск отдается из кэша
func TestClient_CachedSearch(t *testing.T) {
	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/recipes", r.URL.Path)
		assert.Equal(t, "chicken", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[{"id":1,"title":"chicken soup"}]`))
	}))
	defer server.Close()

	respCache := cache.New()
	client := NewClient(server.URL, WithResponseCache(respCache))

	body1, err := client.SearchRecipes(context.Background(), "token", "chicken", false)
	require.NoError(t, err)
	require.Equal(t, int32(1), hits.Load())

	// Запись в кэш асинхронная, ждем появления
	part := cache.PartitionFor("/recipes")
	require.Eventually(t, func() bool {
		return respCache.Len() == 1
	}, time.Second, 5*time.Millisecond)

	body2, err := client.SearchRecipes(context.Background(), "token", "chicken", false)
	require.NoError(t, err)
	assert.Equal(t, body1, body2)
	assert.Equal(t, int32(1), hits.Load(), "второй запрос обслужен из кэша")
	assert.Equal(t, cache.PartitionRecipes, part)

	// Другой запрос — другая сигнатура, идет в сеть
	_, err = client.SearchRecipes(context.Background(), "token", "beef", false)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

// TestClient_CacheBypass проверяет, что bypass-запрос не читает и не пишет кэш
func TestClient_CacheBypass(t *testing.T) {
	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	respCache := cache.New()
	client := NewClient(server.URL, WithResponseCache(respCache))

	_, err := client.SearchFoods(context.Background(), "token", "apple", true)
	require.NoError(t, err)

	_, err = client.SearchFoods(context.Background(), "token", "apple", true)
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load(), "bypass всегда идет в сеть")
	assert.Zero(t, respCache.Len(), "bypass не наполняет кэш")
}
