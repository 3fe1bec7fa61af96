package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/schoolform/order-service/internal/domain/model"
	"github.com/schoolform/order-service/internal/repository"
)

// ArchiveConfig holds configuration for the async order archiver.
type ArchiveConfig struct {
	// BufferSize is the size of the order channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines writing archives.
	NumWorkers int
	// WriteTimeout is the timeout for writing one archive document.
	WriteTimeout time.Duration
}

// DefaultArchiveConfig returns sensible defaults for the archiver.
func DefaultArchiveConfig() ArchiveConfig {
	return ArchiveConfig{
		BufferSize:   256,
		NumWorkers:   2,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncOrderArchiver writes recorded order snapshots to the archive through a
// buffered worker pool. The submission workflow never waits on the archive;
// when the buffer is full the snapshot is dropped and counted.
type AsyncOrderArchiver struct {
	repo         repository.OrdersRepositoryInterface
	orderCh      chan *model.Order
	wg           sync.WaitGroup
	stopCh       chan struct{}
	stopOnce     sync.Once
	writeTimeout time.Duration

	enqueued int64
	dropped  int64
	written  int64
	errors   int64
}

// NewAsyncOrderArchiver creates an archiver over the given repository.
// Returns nil when repo is nil so a disabled archive needs no special casing.
func NewAsyncOrderArchiver(repo repository.OrdersRepositoryInterface, cfg ArchiveConfig) *AsyncOrderArchiver {
	if repo == nil {
		return nil
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultArchiveConfig().BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = DefaultArchiveConfig().NumWorkers
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultArchiveConfig().WriteTimeout
	}

	a := &AsyncOrderArchiver{
		repo:         repo,
		orderCh:      make(chan *model.Order, cfg.BufferSize),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		a.wg.Add(1)
		go a.worker()
	}

	return a
}

// Archive enqueues an order snapshot for archiving. Never blocks.
func (a *AsyncOrderArchiver) Archive(order *model.Order) {
	select {
	case a.orderCh <- order:
		atomic.AddInt64(&a.enqueued, 1)
	default:
		atomic.AddInt64(&a.dropped, 1)
		log.Warn().Str("order_id", order.ID).Msg("Archive buffer full, dropping order snapshot")
	}
}

func (a *AsyncOrderArchiver) worker() {
	defer a.wg.Done()

	for {
		select {
		case order, ok := <-a.orderCh:
			if !ok {
				return
			}
			a.write(order)
		case <-a.stopCh:
			// Drain remaining snapshots before stopping.
			for {
				select {
				case order := <-a.orderCh:
					a.write(order)
				default:
					return
				}
			}
		}
	}
}

func (a *AsyncOrderArchiver) write(order *model.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), a.writeTimeout)
	defer cancel()

	if err := a.repo.Create(ctx, order); err != nil {
		atomic.AddInt64(&a.errors, 1)
		log.Warn().Err(err).Str("order_id", order.ID).Msg("Failed to archive order snapshot")
		return
	}
	atomic.AddInt64(&a.written, 1)
}

// Stop shuts down the worker pool, draining buffered snapshots first.
func (a *AsyncOrderArchiver) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
	})
	a.wg.Wait()
}

// ArchiverStats describes archiver throughput counters.
type ArchiverStats struct {
	Enqueued int64
	Dropped  int64
	Written  int64
	Errors   int64
}

// Stats returns current archiver counters.
func (a *AsyncOrderArchiver) Stats() ArchiverStats {
	return ArchiverStats{
		Enqueued: atomic.LoadInt64(&a.enqueued),
		Dropped:  atomic.LoadInt64(&a.dropped),
		Written:  atomic.LoadInt64(&a.written),
		Errors:   atomic.LoadInt64(&a.errors),
	}
}
