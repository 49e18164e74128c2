package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/platemate/platemate-sync/internal/client/cache"
	"github.com/platemate/platemate-sync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the backend surface consumed by the sync reconciler and
// the token/entitlement caches
type ClientAPI interface {
	// CreateRecord posts a new diary record, сервер использует client_id
	// как idempotency key
	CreateRecord(ctx context.Context, accessToken, entityType string, payload api.RecordPayload) (*api.CreateRecordResponse, error)

	// UpdateRecord replaces an existing record by its remote ID
	UpdateRecord(ctx context.Context, accessToken, entityType, remoteID string, payload api.RecordPayload) (*api.UpdateRecordResponse, error)

	// DeleteRecord removes a record by its remote ID
	DeleteRecord(ctx context.Context, accessToken, entityType, remoteID string) error

	// GetProfile fetches the authoritative remote profile
	GetProfile(ctx context.Context, accessToken, userID string) (*api.ProfileResponse, error)

	// UpdateProfile pushes the local profile outward
	UpdateProfile(ctx context.Context, accessToken, userID string, req api.ProfileUpdateRequest) (*api.ProfileResponse, error)

	// GetServiceToken mints a token for a downstream service, авторизуясь
	// валидным identity-токеном
	GetServiceToken(ctx context.Context, identityToken, serviceID string) (*api.TokenResponse, error)

	// ValidateSubscription asks the backend for the server-side subscription state
	ValidateSubscription(ctx context.Context, accessToken string) (*api.ValidateSubscriptionResponse, error)

	// Health probes backend reachability with a short timeout
	Health(ctx context.Context) error
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	respCache  *cache.ResponseCache
	baseURL    string
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// Option настраивает Client
type Option func(*Client)

// WithResponseCache attaches a response cache consulted for allow-listed GETs
func WithResponseCache(c *cache.ResponseCache) Option {
	return func(cl *Client) { cl.respCache = c }
}

// WithTimeout overrides the default request timeout
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.httpClient.Timeout = d }
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Login аутентифицирует пользователя и возвращает identity-токен сессии.
// Метод намеренно не входит в ClientAPI: он нужен только auth-потоку CLI.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.doRequest(ctx, "POST", "/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// CreateRecord posts a new diary record to the entity's creation endpoint
func (c *Client) CreateRecord(ctx context.Context, accessToken, entityType string, payload api.RecordPayload) (*api.CreateRecordResponse, error) {
	var resp api.CreateRecordResponse
	path := fmt.Sprintf("/%s/create", entityType)
	if err := c.doRequest(ctx, "POST", path, accessToken, payload, &resp); err != nil {
		return nil, fmt.Errorf("create %s request failed: %w", entityType, err)
	}
	return &resp, nil
}

// UpdateRecord replaces an existing record by its remote ID
func (c *Client) UpdateRecord(ctx context.Context, accessToken, entityType, remoteID string, payload api.RecordPayload) (*api.UpdateRecordResponse, error) {
	var resp api.UpdateRecordResponse
	path := fmt.Sprintf("/%s/update/%s", entityType, remoteID)
	if err := c.doRequest(ctx, "PUT", path, accessToken, payload, &resp); err != nil {
		return nil, fmt.Errorf("update %s request failed: %w", entityType, err)
	}
	return &resp, nil
}

// DeleteRecord removes a record by its remote ID
func (c *Client) DeleteRecord(ctx context.Context, accessToken, entityType, remoteID string) error {
	path := fmt.Sprintf("/%s/delete/%s", entityType, remoteID)
	if err := c.doRequest(ctx, "DELETE", path, accessToken, nil, nil); err != nil {
		return fmt.Errorf("delete %s request failed: %w", entityType, err)
	}
	return nil
}

// GetProfile fetches the remote profile
func (c *Client) GetProfile(ctx context.Context, accessToken, userID string) (*api.ProfileResponse, error) {
	var resp api.ProfileResponse
	path := fmt.Sprintf("/users/%s", userID)
	if err := c.doRequest(ctx, "GET", path, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile pushes the local profile outward
func (c *Client) UpdateProfile(ctx context.Context, accessToken, userID string, req api.ProfileUpdateRequest) (*api.ProfileResponse, error) {
	var resp api.ProfileResponse
	path := fmt.Sprintf("/users/%s", userID)
	if err := c.doRequest(ctx, "PUT", path, accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &resp, nil
}

// GetServiceToken mints a token for a downstream service
func (c *Client) GetServiceToken(ctx context.Context, identityToken, serviceID string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	path := fmt.Sprintf("/%s/get-token", serviceID)
	if err := c.doRequest(ctx, "POST", path, identityToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("get %s token request failed: %w", serviceID, err)
	}
	return &resp, nil
}

// ValidateSubscription asks the backend for the server-side subscription state
func (c *Client) ValidateSubscription(ctx context.Context, accessToken string) (*api.ValidateSubscriptionResponse, error) {
	var resp api.ValidateSubscriptionResponse
	if err := c.doRequest(ctx, "POST", "/subscriptions/validate", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("validate subscription request failed: %w", err)
	}
	return &resp, nil
}

// Health probes backend reachability. Таймаут у probe свой, короткий:
// он не должен наследовать основной таймаут клиента.
func (c *Client) Health(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := c.doRequest(probeCtx, "GET", "/health", "", nil, nil); err != nil {
		return fmt.Errorf("health probe failed: %w", err)
	}
	return nil
}

// SearchRecipes performs a cacheable recipe search
func (c *Client) SearchRecipes(ctx context.Context, accessToken, query string, bypassCache bool) ([]byte, error) {
	params := url.Values{"q": {query}}
	return c.cachedGet(ctx, "/recipes", accessToken, params, bypassCache)
}

// SearchFoods performs a cacheable food catalog search
func (c *Client) SearchFoods(ctx context.Context, accessToken, query string, bypassCache bool) ([]byte, error) {
	params := url.Values{"q": {query}}
	return c.cachedGet(ctx, "/food/search", accessToken, params, bypassCache)
}

// cachedGet serves allow-listed GETs through the response cache.
// Запрос с bypass-маркером не читает кэш и не пишет в него.
func (c *Client) cachedGet(ctx context.Context, path, accessToken string, params url.Values, bypassCache bool) ([]byte, error) {
	eligible := c.respCache != nil && !bypassCache && cache.Eligible("GET", path)

	var (
		part string
		sig  string
	)
	if eligible {
		part = cache.PartitionFor(path)
		sig = cache.Signature("GET", path, params, nil)
		if body, ok := c.respCache.Get(part, sig); ok {
			return body, nil
		}
	}

	fullPath := path
	if len(params) > 0 {
		fullPath = path + "?" + params.Encode()
	}

	body, err := c.doRaw(ctx, "GET", fullPath, accessToken, nil)
	if err != nil {
		return nil, err
	}

	if eligible {
		// Вызывающий не ждет записи в кэш
		go c.respCache.Set(part, sig, body)
	}

	return body, nil
}

// doRequest выполняет HTTP запрос и декодирует JSON-ответ
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result any) error {
	respBody, err := c.doRaw(ctx, method, path, accessToken, body)
	if err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// doRaw выполняет HTTP запрос и возвращает сырое тело ответа
func (c *Client) doRaw(ctx context.Context, method, path, accessToken string, body any) ([]byte, error) {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Транспортные сбои (timeout, connection refused, DNS) ретраибельны
		return nil, &TransientError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransientError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := string(respBody)
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			message = errResp.Message
		}
		return nil, classifyStatus(resp.StatusCode, message)
	}

	return respBody, nil
}
