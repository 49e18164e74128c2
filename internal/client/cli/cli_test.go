package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/platemate/platemate-sync/internal/client/iocli"
	"github.com/platemate/platemate-sync/internal/models"
	"github.com/platemate/platemate-sync/pkg/api"
)

// testIO собирает весь вывод CLI в одну строку и отдает заготовленные ответы
// на prompts
type testIO struct {
	mu      sync.Mutex
	output  []string
	inputs  []string
	secrets []string
}

func (t *testIO) mock() *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			t.mu.Lock()
			defer t.mu.Unlock()
			t.output = append(t.output, fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			t.mu.Lock()
			defer t.mu.Unlock()
			t.output = append(t.output, fmt.Sprintf(format, a...))
		},
		WriteFunc: func(p []byte) (int, error) {
			t.mu.Lock()
			defer t.mu.Unlock()
			t.output = append(t.output, string(p))
			return len(p), nil
		},
		ReadInputFunc: func(prompt string) (string, error) {
			t.mu.Lock()
			defer t.mu.Unlock()
			if len(t.inputs) == 0 {
				return "", nil
			}
			next := t.inputs[0]
			t.inputs = t.inputs[1:]
			return next, nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			t.mu.Lock()
			defer t.mu.Unlock()
			if len(t.secrets) == 0 {
				return "", nil
			}
			next := t.secrets[0]
			t.secrets = t.secrets[1:]
			return next, nil
		},
	}
}

func (t *testIO) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Join(t.output, "")
}

// fakeSession реализует sessionService для тестов команд
type fakeSession struct {
	authenticated bool
	userID        string
	savedToken    string
	savedUserID   string
	savedExpiry   time.Time
	cleared       bool
}

func (f *fakeSession) IsAuthenticated(ctx context.Context) (bool, error) {
	return f.authenticated, nil
}

func (f *fakeSession) UserID(ctx context.Context) (string, error) {
	return f.userID, nil
}

func (f *fakeSession) SetSession(ctx context.Context, token, userID string, expiresAt time.Time) error {
	f.savedToken = token
	f.savedUserID = userID
	f.savedExpiry = expiresAt
	f.authenticated = true
	f.userID = userID
	return nil
}

func (f *fakeSession) Clear(ctx context.Context) error {
	f.cleared = true
	f.authenticated = false
	return nil
}

// fakeEntitlements реализует entitlementService
type fakeEntitlements struct {
	tier    models.Tier
	cleared int
}

func (f *fakeEntitlements) GetTier(ctx context.Context) models.Tier {
	return f.tier
}

func (f *fakeEntitlements) HasPremiumAccess(ctx context.Context) bool {
	return f.tier.HasPremiumAccess()
}

func (f *fakeEntitlements) ClearCache(ctx context.Context) {
	f.cleared++
}

// fakeTokens реализует tokenCache
type fakeTokens struct {
	tokens   map[string]string
	getErr   error
	requests []string
	cleared  bool
}

func (f *fakeTokens) Get(ctx context.Context, serviceID string) (string, error) {
	f.requests = append(f.requests, serviceID)
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.tokens[serviceID], nil
}

func (f *fakeTokens) ClearAll(ctx context.Context) error {
	f.cleared = true
	return nil
}

// searchCall фиксирует аргументы одного вызова поиска
type searchCall struct {
	token  string
	query  string
	bypass bool
}

// fakeAPI реализует apiService
type fakeAPI struct {
	resp *api.LoginResponse
	err  error

	calls []api.LoginRequest

	searchBody []byte
	searchErr  error
	foods      []searchCall
	recipes    []searchCall
}

func (f *fakeAPI) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeAPI) SearchFoods(ctx context.Context, accessToken, query string, bypassCache bool) ([]byte, error) {
	f.foods = append(f.foods, searchCall{token: accessToken, query: query, bypass: bypassCache})
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchBody, nil
}

func (f *fakeAPI) SearchRecipes(ctx context.Context, accessToken, query string, bypassCache bool) ([]byte, error) {
	f.recipes = append(f.recipes, searchCall{token: accessToken, query: query, bypass: bypassCache})
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchBody, nil
}
