package models

import "time"

// Tier представляет уровень подписки пользователя
type Tier string

const (
	TierFree             Tier = "free"
	TierPromotionalTrial Tier = "promotional_trial"
	TierExtendedTrial    Tier = "extended_trial"
	TierPremiumMonthly   Tier = "premium_monthly"
	TierPremiumAnnual    Tier = "premium_annual"
	TierVipLifetime      Tier = "vip_lifetime"
)

// HasPremiumAccess reports whether the tier grants access to premium features.
func (t Tier) HasPremiumAccess() bool {
	return t != TierFree && t != ""
}

// IsLongLived reports whether the tier qualifies for the long-lived cache TTL.
// Только vip-статус меняется настолько редко, что его можно кэшировать сутками;
// платные и триальные подписки могут измениться в любой момент через внешние
// purchase-флоу.
func (t Tier) IsLongLived() bool {
	return t == TierVipLifetime
}

// EntitlementSnapshot представляет закэшированный результат проверки подписки
type EntitlementSnapshot struct {
	AsOf             time.Time `json:"as_of"`
	Tier             Tier      `json:"tier"`
	HasPremiumAccess bool      `json:"has_premium_access"`
	LongLivedTier    bool      `json:"long_lived_tier"` // какой TTL-класс применяется
}

// Fresh reports whether the snapshot is still valid at now given the TTL
// class it was stored with.
func (s *EntitlementSnapshot) Fresh(now time.Time, shortTTL, longTTL time.Duration) bool {
	ttl := shortTTL
	if s.LongLivedTier {
		ttl = longTTL
	}
	return now.Sub(s.AsOf) <= ttl
}
