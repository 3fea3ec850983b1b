package library

// Kind classifies a notification sent to the presentation layer.
type Kind string

const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notifier receives one-way status notifications from the managers.
// Every manager operation ends in exactly one notification; the managers
// never wait for a response.
type Notifier interface {
	Notify(kind Kind, title, message string)
}

// NopNotifier discards all notifications. Useful for callers that only
// care about return values.
type NopNotifier struct{}

func (NopNotifier) Notify(Kind, string, string) {}
