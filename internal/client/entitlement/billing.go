package entitlement

import (
	"context"
	"errors"
)

// ErrBillingUnavailable возвращается, когда billing-провайдер недоступен на
// этой платформе или не сконфигурирован
var ErrBillingUnavailable = errors.New("billing provider unavailable")

// BillingEntitlement — живое состояние подписки у стороннего billing-провайдера
type BillingEntitlement struct {
	ProductID    string // идентификатор продукта подписки
	InIntroTrial bool   // действует ли introductory trial период стора
}

// BillingProvider запрашивает активную подписку у стороннего биллинга.
// Провайдер capability-checked: перед вызовом ActiveProduct вызывающий
// проверяет Available, потому что на части платформ биллинга просто нет.
type BillingProvider interface {
	// Available reports whether the provider can serve entitlement queries
	Available() bool

	// ActiveProduct returns the currently active subscription, or nil when
	// the user has none
	ActiveProduct(ctx context.Context) (*BillingEntitlement, error)
}

// UnavailableBilling — заглушка для платформ без биллинга
type UnavailableBilling struct{}

var _ BillingProvider = UnavailableBilling{}

func (UnavailableBilling) Available() bool { return false }

func (UnavailableBilling) ActiveProduct(ctx context.Context) (*BillingEntitlement, error) {
	return nil, ErrBillingUnavailable
}
