package kbloom

import (
	"context"
	"log/slog"
)

// Observer is notified of inserts and lookups, for monitoring. desc is the
// item rendered as a string. Observers cannot affect results and are only
// called when registered, so an unobserved filter pays nothing for them.
//
// Lookups may run concurrently (LockedFilter holds only a read lock while
// testing), so implementations must be safe for concurrent use.
type Observer interface {
	OnInsert(desc string)
	OnLookup(desc string, found bool)
}

type logObserver struct {
	log *slog.Logger
}

// NewLogObserver returns an Observer that writes to logger. Inserts and
// possible hits are logged at Info, definite misses at Warn. A nil logger
// uses slog.Default().
func NewLogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &logObserver{log: logger}
}

func (o *logObserver) OnInsert(desc string) {
	o.log.Info("inserting item into filter", slog.String("item", desc))
}

func (o *logObserver) OnLookup(desc string, found bool) {
	if found {
		o.log.Info("item might be in the filter", slog.String("item", desc))
		return
	}
	o.log.LogAttrs(context.Background(), slog.LevelWarn, "item is definitely not in the filter",
		slog.String("item", desc))
}
