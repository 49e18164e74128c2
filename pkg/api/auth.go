package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse представляет ответ на успешный вход
type LoginResponse struct {
	UserID    string `json:"user_id"`    // UUID пользователя
	Token     string `json:"token"`      // JWT identity-токен сессии
	TokenType string `json:"token_type"` // обычно "Bearer"
	ExpiresIn int64  `json:"expires_in"` // время жизни токена в секундах
}
