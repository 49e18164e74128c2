package entitlement

import (
	"strings"

	"github.com/platemate/platemate-sync/internal/models"
)

// Backend-статусы подписки из POST /subscriptions/validate
const (
	statusFree      = "free"
	statusFreeTrial = "free_trial"
	statusActive    = "active"
	statusExpired   = "expired"
	statusVIP       = "vip"
)

// resolveTier сводит одновременно действующие entitlement'ы к одному tier'у.
// Порядок приоритета: vip > промо-триал > extension-триал > платная подписка >
// free. Introductory trial стора приравнивается к промо-триалу, когда
// backend-триала нет.
func resolveTier(status, productID string, trialTier models.Tier, billing *BillingEntitlement) models.Tier {
	if status == statusVIP {
		return models.TierVipLifetime
	}

	switch trialTier {
	case models.TierPromotionalTrial:
		return models.TierPromotionalTrial
	case models.TierExtendedTrial:
		return models.TierExtendedTrial
	}

	if status == statusActive {
		return paidTierFor(productID)
	}

	if billing != nil {
		if billing.InIntroTrial {
			return models.TierPromotionalTrial
		}
		if billing.ProductID != "" {
			return paidTierFor(billing.ProductID)
		}
	}

	return models.TierFree
}

// paidTierFor различает месячную и годовую подписку по идентификатору продукта
func paidTierFor(productID string) models.Tier {
	lower := strings.ToLower(productID)
	if strings.Contains(lower, "annual") || strings.Contains(lower, "year") {
		return models.TierPremiumAnnual
	}
	return models.TierPremiumMonthly
}
