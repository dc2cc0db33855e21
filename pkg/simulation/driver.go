package simulation

import (
	"context"
	"errors"
	"sync"
	"time"

	golog "github.com/tochemey/goakt/v3/log"
)

var ErrDriverRunning = errors.New("driver already running")

// Driver sends a Tick to the flock at a fixed rate until stopped.
// It can be started again after Stop.
type Driver struct {
	client   *Client
	interval time.Duration
	logger   golog.Logger
	maxTicks uint64

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDriver ticks client ticksPerSecond times per second (60 when <= 0).
func NewDriver(client *Client, ticksPerSecond int, logger golog.Logger) *Driver {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	if logger == nil {
		logger = golog.DiscardLogger
	}
	return &Driver{
		client:   client,
		interval: time.Second / time.Duration(ticksPerSecond),
		logger:   logger,
	}
}

// SetMaxTicks makes every later run end on its own after sending n ticks;
// 0 removes the limit. Done is closed when the limit is reached.
func (d *Driver) SetMaxTicks(n uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.maxTicks = n
}

// Start launches the tick loop. It returns at once; the loop ends when ctx is
// cancelled or Stop is called.
func (d *Driver) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return ErrDriverRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.done = make(chan struct{})
	go d.run(ctx, d.done, d.maxTicks)
	d.logger.Infof("driver started at %s per tick", d.interval)
	return nil
}

func (d *Driver) run(ctx context.Context, done chan<- struct{}, maxTicks uint64) {
	defer close(done)
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	var sent uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.client.Tick(ctx); err != nil {
				d.logger.Warnf("tick not delivered: %v", err)
				continue
			}
			sent++
			if maxTicks > 0 && sent >= maxTicks {
				d.logger.Infof("driver sent its %d ticks", sent)
				return
			}
		}
	}
}

// Stop ends the loop and waits for it; no Tick is sent after Stop returns.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
	d.cancel = nil
	d.done = nil
	d.logger.Info("driver stopped")
}

// Running reports whether Start was called without a matching Stop.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancel != nil
}

// Done is closed when the current loop exits, nil when not running.
func (d *Driver) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}
