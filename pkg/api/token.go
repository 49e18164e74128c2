package api

// TokenResponse представляет ответ эндпоинта POST /{service}/get-token.
// ExpiresIn может быть нулевым — тогда срок жизни извлекается из exp claim
// самого токена (JWT).
type TokenResponse struct {
	Token     string `json:"token"`      // bearer credential для downstream сервиса
	TokenType string `json:"token_type"` // обычно "Bearer"
	ExpiresIn int64  `json:"expires_in"` // время жизни токена в секундах, 0 если не задано
}
