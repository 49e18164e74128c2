package api

import (
	"errors"
	"fmt"
	"net"
)

// Таксономия ошибок API-слоя:
//   - transient (timeout, connection refused, 5xx, 429) — reconciler ретраит
//   - authentication (401) — пробрасывается вызывающему, нужен re-auth
//   - остальные HTTP-ошибки — StatusError без ретраев
var (
	// ErrAuthentication indicates a missing/invalid/expired credential
	ErrAuthentication = errors.New("authentication required")
)

// StatusError represents a non-2xx response from the backend
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// TransientError wraps failures worth retrying: сетевые сбои и серверные
// 5xx/429 ответы
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether the error is retryable
func IsTransient(err error) bool {
	var te *TransientError
	if errors.As(err, &te) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}

// classifyStatus конвертирует не-2xx статус в типизированную ошибку
func classifyStatus(statusCode int, message string) error {
	switch {
	case statusCode == 401:
		return fmt.Errorf("%w: %s", ErrAuthentication, message)
	case statusCode == 429 || statusCode >= 500:
		return &TransientError{Err: &StatusError{StatusCode: statusCode, Message: message}}
	default:
		return &StatusError{StatusCode: statusCode, Message: message}
	}
}
