package api

// ValidateSubscriptionResponse представляет ответ POST /subscriptions/validate.
// Backend — source of truth для vip-статуса и промо-триалов; store-подписки
// подтверждаются billing-провайдером на клиенте.
type ValidateSubscriptionResponse struct {
	Status               string `json:"status"`                 // free, free_trial, active, expired, vip
	ProductID            string `json:"product_id"`             // идентификатор продукта подписки
	TrialStartDate       string `json:"trial_start_date"`       // RFC3339, пусто если триала не было
	TrialEndDate         string `json:"trial_end_date"`         // RFC3339
	ExtendedTrialGranted bool   `json:"extended_trial_granted"` // выдан ли extension trial
	ExtendedTrialEndDate string `json:"extended_trial_end_date"`
}
