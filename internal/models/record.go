package models

import "time"

// SyncState описывает состояние записи в цикле синхронизации
type SyncState string

const (
	// SyncStateUnsynced — запись изменена локально и еще не отправлена на сервер
	SyncStateUnsynced SyncState = "unsynced"
	// SyncStateSyncing — запись захвачена текущим sync-проходом
	SyncStateSyncing SyncState = "syncing"
	// SyncStateSynced — запись подтверждена сервером
	SyncStateSynced SyncState = "synced"
	// SyncStateFailed — запись не удалось отправить; вернется в Unsynced на следующем проходе
	SyncStateFailed SyncState = "failed"
)

// PendingAction описывает мутацию, которую нужно воспроизвести на сервере
type PendingAction string

const (
	ActionCreate PendingAction = "create"
	ActionUpdate PendingAction = "update"
	ActionDelete PendingAction = "delete"
	// ActionNone — запись синхронизирована, отложенных мутаций нет
	ActionNone PendingAction = ""
)

// Entity type names, совпадают с сегментами REST-эндпоинтов сервера
const (
	EntityFoodLogs  = "food_logs"
	EntityExercises = "exercises"
	EntityWater     = "water"
	EntitySteps     = "steps"
	EntityStreaks   = "streaks"
	EntityWeights   = "weights"
)

// SyncEntities перечисляет entity families в порядке обработки sync-проходом
var SyncEntities = []string{
	EntityFoodLogs,
	EntityExercises,
	EntityWater,
	EntitySteps,
	EntityStreaks,
	EntityWeights,
}

// Record представляет одну синхронизируемую запись дневника.
// Payload хранится как JSON конкретной сущности (FoodLog, Exercise, ...),
// запись несет только метаданные, нужные reconciler'у.
//
// Инварианты:
//   - SyncState == Synced влечет RemoteID != "" и PendingAction == ActionNone
//   - PendingAction == Delete: запись физически удаляется из хранилища
//     только после подтверждения сервером (tombstone)
type Record struct {
	LastModified  time.Time     `json:"last_modified"`
	LocalID       string        `json:"local_id"`  // локальный UUID, стабилен на все время жизни записи
	RemoteID      string        `json:"remote_id"` // серверный ID, пустой до подтверждения create
	EntityType    string        `json:"entity_type"`
	SyncState     SyncState     `json:"sync_state"`
	PendingAction PendingAction `json:"pending_action"`
	Payload       []byte        `json:"payload"`
	Attempts      int           `json:"attempts"` // сколько sync-проходов запись уже не удалось отправить
}

// IsTombstone reports whether the record is a delete awaiting remote acknowledgment.
func (r *Record) IsTombstone() bool {
	return r.PendingAction == ActionDelete
}

// NeedsCreate reports whether the record has never been acknowledged by the server.
// Update для такой записи переквалифицируется в Create: PUT без remote id
// отправлять нельзя.
func (r *Record) NeedsCreate() bool {
	return r.RemoteID == ""
}
