package dashboard

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

const (
	titleSuccess = "Sucesso"
	titleError   = "Erro"
)

// Notification is a user-visible outcome of an action.
type Notification struct {
	Title   string
	Message string
	Variant Variant
	At      time.Time
}

type Notifier interface {
	Notify(n Notification)
}

// NotificationLog exposes past notifications, newest first.
type NotificationLog interface {
	Recent() []Notification
}

// Feed keeps the most recent notifications in memory.
type Feed struct {
	mu     sync.Mutex
	items  []Notification
	limit  int
	logger *zap.Logger
	now    func() time.Time
}

var (
	_ Notifier        = (*Feed)(nil)
	_ NotificationLog = (*Feed)(nil)
)

const defaultFeedLimit = 50

func NewFeed(limit int, logger *zap.Logger) *Feed {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feed{limit: limit, logger: logger.Named("notification"), now: time.Now}
}

func (f *Feed) Notify(n Notification) {
	if n.Variant == "" {
		n.Variant = VariantDefault
	}
	if n.At.IsZero() {
		n.At = f.now().UTC()
	}

	if n.Variant == VariantDestructive {
		f.logger.Warn(n.Message, zap.String("title", n.Title))
	} else {
		f.logger.Info(n.Message, zap.String("title", n.Title))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, n)
	if len(f.items) > f.limit {
		f.items = f.items[len(f.items)-f.limit:]
	}
}

// Recent returns the notifications newest first.
func (f *Feed) Recent() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.items))
	for i, n := range f.items {
		out[len(f.items)-1-i] = n
	}
	return out
}

func info(title, message string) Notification {
	return Notification{Title: title, Message: message, Variant: VariantDefault}
}

func failure(message string) Notification {
	return Notification{Title: titleError, Message: message, Variant: VariantDestructive}
}
