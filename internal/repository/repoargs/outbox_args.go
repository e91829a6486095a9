package repoargs

// EnqueueEvent запись события в outbox. Выполняется в одной транзакции
// с изменением заказа.
type EnqueueEvent struct {
	EventID string
	Topic   string
	Payload []byte
}
