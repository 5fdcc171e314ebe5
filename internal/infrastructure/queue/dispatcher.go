package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cinevault/catalog-api/internal/api/metrics"
	"github.com/cinevault/catalog-api/internal/core/domain"
	"github.com/cinevault/catalog-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes bulk-import entries to a fixed set of workers using
// consistent hashing on the title, so two imports of the same title land
// on the same worker and serialize through the duplicate check.
//
// Processing is at-most-once: failed items are logged and counted, never
// retried. Stop closes the queue and lets the workers flush everything
// already accepted, so a 202 means the item will be attempted unless the
// shutdown deadline expires first.
type Dispatcher struct {
	workers []chan ports.CreateMovieInput
	service ports.MovieService
	log     zerolog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.MovieService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.CreateMovieInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.CreateMovieInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers run until Stop is called
// and their channels are drained.
func (d *Dispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Enqueue sends an entry to the worker responsible for its title.
// Entries arriving after Stop are dropped and counted.
func (d *Dispatcher) Enqueue(input ports.CreateMovieInput) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		metrics.ImportErrorsTotal.WithLabelValues("queue_closed").Inc()
		d.log.Warn().Str("title", input.Title).Msg("import dropped: queue closed")
		return
	}
	i := d.shardIndex(input.Title)
	d.workers[i] <- input
	d.mu.Unlock()

	metrics.ImportQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// EnqueueBatch enqueues multiple entries preserving per-title ordering.
func (d *Dispatcher) EnqueueBatch(inputs []ports.CreateMovieInput) {
	for _, in := range inputs {
		d.Enqueue(in)
	}
}

// Stop closes the queue and waits for the workers to flush the entries
// already accepted. Returns ctx.Err() if the deadline expires before the
// drain completes.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) shardIndex(title string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(title))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(id int, ch <-chan ports.CreateMovieInput) {
	defer d.wg.Done()

	workerID := strconv.Itoa(id)
	for input := range ch {
		metrics.ImportQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))

		// The repository bounds each save with its own timeout, so a
		// cancelled request or shutdown context must not abort items
		// the API already accepted.
		_, err := d.service.SaveExternal(context.Background(), input)
		switch {
		case err == nil:
			// counted as source=external by the save path itself
		case errors.Is(err, domain.ErrMovieExists):
			metrics.ImportErrorsTotal.WithLabelValues("duplicate_title").Inc()
			d.log.Debug().Str("title", input.Title).Int("worker_id", id).Msg("import skipped duplicate")
		default:
			metrics.ImportErrorsTotal.WithLabelValues("storage_error").Inc()
			d.log.Error().Err(err).Str("title", input.Title).Int("worker_id", id).Msg("import failed")
		}
	}
}
