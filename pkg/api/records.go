package api

// RecordPayload представляет одну запись дневника для отправки на сервер.
// ClientID — локальный UUID записи, сервер использует его как idempotency key:
// повторный create с тем же client_id не создает дубликат.
type RecordPayload struct {
	ClientID     string         `json:"client_id"`     // локальный UUID записи
	EntityType   string         `json:"entity_type"`   // тип сущности (food_logs, exercises, ...)
	Data         map[string]any `json:"data"`          // поля сущности
	LastModified int64          `json:"last_modified"` // unix ms последнего локального изменения
}

// CreateRecordResponse представляет ответ сервера на создание записи
type CreateRecordResponse struct {
	ID      string `json:"id"`      // серверный ID созданной записи
	Message string `json:"message"` // сообщение об успешном создании
}

// UpdateRecordResponse представляет ответ сервера на обновление записи
type UpdateRecordResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// DeleteRecordResponse представляет ответ сервера на удаление записи
type DeleteRecordResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
