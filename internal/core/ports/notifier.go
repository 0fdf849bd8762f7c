package ports

// Notifier pushes events to connected WebSocket clients. Implementations are
// process local: a user connected to another instance will not receive the
// push, only the persisted notification row.
type Notifier interface {
	SendToUser(userID, event string, payload any)
	Broadcast(event string, payload any)
}

// NotificationQueue hands notification deliveries to background workers so
// request handlers never wait on fan-out.
type NotificationQueue interface {
	Enqueue(userID, message, typ string)
}
