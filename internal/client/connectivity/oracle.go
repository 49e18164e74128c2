package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Prober проверяет фактическую достижимость backend'а. "Интерфейс поднят" и
// "backend отвечает" — разные вещи: captive portal или кривой DNS дают
// ложный "online".
type Prober interface {
	Health(ctx context.Context) error
}

// Oracle хранит последнее известное состояние сети и дергает подписчиков
// при переходе offline → online. Флаг обновляется платформенными событиями
// (SetOnline) либо активной пробой (CheckNow).
type Oracle struct {
	prober Prober
	logger *slog.Logger
	online atomic.Bool

	mu        sync.Mutex
	callbacks []func()
}

// New создает оракул. Начальное состояние — online: пессимистичный старт
// заблокировал бы первый sync до первого сетевого события.
func New(prober Prober, logger *slog.Logger) *Oracle {
	o := &Oracle{
		prober: prober,
		logger: logger,
	}
	o.online.Store(true)
	return o
}

// IsOnline returns the last known connectivity state without I/O
func (o *Oracle) IsOnline() bool {
	return o.online.Load()
}

// SetOnline updates the state from a platform network-change event.
// Переход offline → online синхронно дергает подписчиков.
func (o *Oracle) SetOnline(online bool) {
	wasOnline := o.online.Swap(online)
	if online && !wasOnline {
		o.logger.Info("connectivity regained")
		o.fire()
	}
	if !online && wasOnline {
		o.logger.Info("connectivity lost")
	}
}

// OnOnline registers a callback fired on each offline → online transition.
// Возвращенная функция отписывает.
func (o *Oracle) OnOnline(callback func()) func() {
	o.mu.Lock()
	o.callbacks = append(o.callbacks, callback)
	index := len(o.callbacks) - 1
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		o.callbacks[index] = nil
		o.mu.Unlock()
	}
}

// CheckNow actively probes the backend and updates the state.
// Проба ходит в сеть даже из offline-состояния: это единственный путь
// обнаружить восстановление без платформенного события.
func (o *Oracle) CheckNow(ctx context.Context) bool {
	err := o.prober.Health(ctx)
	online := err == nil
	if err != nil {
		o.logger.Debug("reachability probe failed", "error", err)
	}
	o.SetOnline(online)
	return online
}

func (o *Oracle) fire() {
	o.mu.Lock()
	callbacks := make([]func(), 0, len(o.callbacks))
	for _, cb := range o.callbacks {
		if cb != nil {
			callbacks = append(callbacks, cb)
		}
	}
	o.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}
