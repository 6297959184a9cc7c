package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/bnema/vpnadm/internal/ports"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

const (
	DefaultWatchInterval = 30 * time.Second
	DefaultWatchTimeout  = 30 * time.Second
)

// WatchUpdate is published after every completed poll. View is the latest good
// snapshot and survives failed polls; Err is set when this poll failed.
type WatchUpdate struct {
	View ClientView
	Err  error
	OK   bool
}

type WatcherStats struct {
	Polls    int64
	Failures int64
	Skipped  int64
}

// SubscriptionWatcher polls the public subscription page on a fixed interval.
// At most one request is in flight; ticks that land while one is pending are
// skipped rather than queued.
type SubscriptionWatcher struct {
	api      ports.SubscriptionAPI
	id       domain.ClientID
	interval time.Duration
	timeout  time.Duration
	clock    ports.Clock
	log      logrus.FieldLogger

	inFlight atomic.Bool
	polls    atomic.Int64
	failures atomic.Int64
	skipped  atomic.Int64

	mu          sync.RWMutex
	latest      ClientView
	hasLatest   bool
	subscribers []chan WatchUpdate
}

type WatcherOption func(*SubscriptionWatcher)

func WithWatchInterval(interval time.Duration) WatcherOption {
	return func(w *SubscriptionWatcher) {
		if interval > 0 {
			w.interval = interval
		}
	}
}

func WithWatchTimeout(timeout time.Duration) WatcherOption {
	return func(w *SubscriptionWatcher) {
		if timeout > 0 {
			w.timeout = timeout
		}
	}
}

func WithWatchClock(clock ports.Clock) WatcherOption {
	return func(w *SubscriptionWatcher) {
		if clock != nil {
			w.clock = clock
		}
	}
}

func WithWatchLogger(log logrus.FieldLogger) WatcherOption {
	return func(w *SubscriptionWatcher) {
		if log != nil {
			w.log = log
		}
	}
}

func NewSubscriptionWatcher(api ports.SubscriptionAPI, id domain.ClientID, opts ...WatcherOption) *SubscriptionWatcher {
	w := &SubscriptionWatcher{
		api:      api,
		id:       id,
		interval: DefaultWatchInterval,
		timeout:  DefaultWatchTimeout,
		clock:    ports.SystemClock{},
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.WithField("client_id", string(id))

	return w
}

// Subscribe returns a channel that always holds the most recent update. A slow
// reader misses intermediate updates, never the newest one. The channel is
// closed when Run returns.
func (w *SubscriptionWatcher) Subscribe() <-chan WatchUpdate {
	ch := make(chan WatchUpdate, 1)

	w.mu.Lock()
	w.subscribers = append(w.subscribers, ch)
	w.mu.Unlock()

	return ch
}

// Run polls once immediately, then on every interval until ctx is done.
func (w *SubscriptionWatcher) Run(ctx context.Context) error {
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(fmt.Sprintf("@every %s", w.interval), func() { w.Tick(ctx) }); err != nil {
		return fmt.Errorf("schedule subscription poll: %w", err)
	}

	w.Tick(ctx)
	scheduler.Start()
	w.log.WithField("interval", w.interval).Debug("subscription watcher started")

	<-ctx.Done()
	<-scheduler.Stop().Done()
	w.closeSubscribers()
	w.log.WithFields(logrus.Fields{
		"polls":    w.polls.Load(),
		"failures": w.failures.Load(),
		"skipped":  w.skipped.Load(),
	}).Debug("subscription watcher stopped")

	return nil
}

// Tick runs one poll unless another is still pending. It reports whether a poll ran.
func (w *SubscriptionWatcher) Tick(ctx context.Context) bool {
	if !w.inFlight.CompareAndSwap(false, true) {
		w.skipped.Inc()
		w.log.Debug("previous subscription poll still pending, skipping tick")
		return false
	}
	defer w.inFlight.Store(false)

	if ctx.Err() != nil {
		return false
	}

	reqCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	sub, err := w.api.Subscription(reqCtx, w.id)
	w.polls.Inc()
	if err != nil {
		w.failures.Inc()
		w.log.WithError(err).Warn("subscription poll failed")
		w.publish(err)
		return true
	}

	view := NewClientView(sub, w.clock.Now())
	w.mu.Lock()
	w.latest = view
	w.hasLatest = true
	w.mu.Unlock()

	w.publish(nil)
	return true
}

// Latest returns the last good snapshot.
func (w *SubscriptionWatcher) Latest() (ClientView, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.latest, w.hasLatest
}

func (w *SubscriptionWatcher) Stats() WatcherStats {
	return WatcherStats{
		Polls:    w.polls.Load(),
		Failures: w.failures.Load(),
		Skipped:  w.skipped.Load(),
	}
}

func (w *SubscriptionWatcher) publish(err error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	update := WatchUpdate{View: w.latest, OK: w.hasLatest, Err: err}
	for _, ch := range w.subscribers {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- update:
		default:
		}
	}
}

func (w *SubscriptionWatcher) closeSubscribers() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, ch := range w.subscribers {
		close(ch)
	}
	w.subscribers = nil
}
