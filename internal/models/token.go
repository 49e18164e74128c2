package models

import "time"

// Service IDs downstream-сервисов, для которых клиент держит токены.
// ServiceIdentity — токен identity-провайдера, остальные выдаются backend'ом
// через POST /{service}/get-token.
const (
	ServiceIdentity    = "identity"
	ServiceFatSecret   = "fatsecret"
	ServiceSpoonacular = "spoonacular"
	ServiceNutritionix = "nutritionix"
	ServiceOpenAI      = "openai"
)

// TokenRecord представляет bearer credential для одного downstream-сервиса
type TokenRecord struct {
	ExpiresAt time.Time `json:"expires_at"`
	ServiceID string    `json:"service_id"`
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
}

// ValidFor reports whether the token is still usable at now with the given
// refresh margin. Токен, истекающий внутри margin, считается невалидным,
// чтобы не отдать credential, который протухнет посреди операции.
func (t *TokenRecord) ValidFor(now time.Time, margin time.Duration) bool {
	if t.Token == "" {
		return false
	}
	return now.Add(margin).Before(t.ExpiresAt)
}
