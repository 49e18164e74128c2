package cli

import (
	"context"
	"time"

	"github.com/platemate/platemate-sync/internal/client/diary"
	"github.com/platemate/platemate-sync/internal/client/iocli"
	"github.com/platemate/platemate-sync/internal/client/storage"
	"github.com/platemate/platemate-sync/internal/client/sync"
	"github.com/platemate/platemate-sync/internal/models"
	"github.com/platemate/platemate-sync/pkg/api"
)

// apiService — часть API-клиента, нужная командам: вход и поиск по каталогам
type apiService interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	SearchFoods(ctx context.Context, accessToken, query string, bypassCache bool) ([]byte, error)
	SearchRecipes(ctx context.Context, accessToken, query string, bypassCache bool) ([]byte, error)
}

// sessionService — операции над локальной сессией
type sessionService interface {
	IsAuthenticated(ctx context.Context) (bool, error)
	UserID(ctx context.Context) (string, error)
	SetSession(ctx context.Context, token, userID string, expiresAt time.Time) error
	Clear(ctx context.Context) error
}

// entitlementService — проверки подписки для команд status и entitlement
type entitlementService interface {
	GetTier(ctx context.Context) models.Tier
	HasPremiumAccess(ctx context.Context) bool
	ClearCache(ctx context.Context)
}

// tokenCache — сервисные токены: выпуск для команд поиска, сброс при logout
type tokenCache interface {
	Get(ctx context.Context, serviceID string) (string, error)
	ClearAll(ctx context.Context) error
}

type Cli struct {
	io           iocli.IO
	apiClient    apiService
	session      sessionService
	diaryService diary.Service
	syncService  sync.Service
	entitlements entitlementService
	tokens       tokenCache
	records      storage.RecordStorage
	metadata     storage.MetadataStorage
	clock        func() time.Time
}

type Deps struct {
	IO           iocli.IO
	APIClient    apiService
	Session      sessionService
	DiaryService diary.Service
	SyncService  sync.Service
	Entitlements entitlementService
	Tokens       tokenCache
	Records      storage.RecordStorage
	Metadata     storage.MetadataStorage
}

func New(deps Deps) *Cli {
	return &Cli{
		io:           deps.IO,
		apiClient:    deps.APIClient,
		session:      deps.Session,
		diaryService: deps.DiaryService,
		syncService:  deps.SyncService,
		entitlements: deps.Entitlements,
		tokens:       deps.Tokens,
		records:      deps.Records,
		metadata:     deps.Metadata,
		clock:        time.Now,
	}
}

// hasFlag проверяет наличие флага в хвосте аргументов команды
func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}
