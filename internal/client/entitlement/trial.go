package entitlement

import (
	"errors"
	"sync"
	"time"

	"github.com/platemate/platemate-sync/internal/models"
)

// TrialDuration — длительность промо-триала
const TrialDuration = 20 * 24 * time.Hour

// TrialState представляет состояние триала
type TrialState string

const (
	TrialNotStarted TrialState = "not_started"
	TrialActive     TrialState = "active"
	TrialExtended   TrialState = "extended"
	TrialExpired    TrialState = "expired"
)

var (
	// ErrTrialAlreadyStarted возвращается при повторном старте триала
	ErrTrialAlreadyStarted = errors.New("trial already started")
	// ErrTrialNotStarted возвращается при extend триала, который не начинался
	ErrTrialNotStarted = errors.New("trial has not started")
)

// Trial отслеживает жизненный цикл промо-триала. Истечение не событие,
// а производная от часов: State сравнивает now с границами окон.
type Trial struct {
	clock func() time.Time

	mu             sync.RWMutex
	startedAt      time.Time
	endsAt         time.Time
	extended       bool
	extendedEndsAt time.Time
}

// TrialOption настраивает Trial
type TrialOption func(*Trial)

// WithTrialClock заменяет источник времени в тестах
func WithTrialClock(clock func() time.Time) TrialOption {
	return func(t *Trial) { t.clock = clock }
}

// NewTrial создает машину состояний триала
func NewTrial(opts ...TrialOption) *Trial {
	t := &Trial{clock: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start opens the 20-day trial window. Триал стартует ровно один раз.
func (t *Trial) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.startedAt.IsZero() {
		return ErrTrialAlreadyStarted
	}

	now := t.clock()
	t.startedAt = now
	t.endsAt = now.Add(TrialDuration)
	return nil
}

// Extend grants an extension window ending at until
func (t *Trial) Extend(until time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.startedAt.IsZero() {
		return ErrTrialNotStarted
	}

	t.extended = true
	t.extendedEndsAt = until
	return nil
}

// ApplyRemote seeds the machine from the backend's authoritative trial dates.
// Backend — source of truth: локальное состояние перезаписывается целиком.
func (t *Trial) ApplyRemote(startedAt, endsAt time.Time, extended bool, extendedEndsAt time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.startedAt = startedAt
	t.endsAt = endsAt
	t.extended = extended
	t.extendedEndsAt = extendedEndsAt
}

// State returns the current trial state derived from the clock
func (t *Trial) State() TrialState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.startedAt.IsZero() {
		return TrialNotStarted
	}

	now := t.clock()
	if now.Before(t.endsAt) {
		return TrialActive
	}
	if t.extended && now.Before(t.extendedEndsAt) {
		return TrialExtended
	}
	return TrialExpired
}

// CurrentTier maps the trial state to the tier it grants
func (t *Trial) CurrentTier() models.Tier {
	switch t.State() {
	case TrialActive:
		return models.TierPromotionalTrial
	case TrialExtended:
		return models.TierExtendedTrial
	default:
		return models.TierFree
	}
}
