package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinevault/catalog-api/internal/core/domain"
	"github.com/cinevault/catalog-api/internal/core/ports"
)

// recordingService records SaveExternal calls and simulates the duplicate
// check the real service performs. If block is set, saves wait on it.
type recordingService struct {
	mu     sync.Mutex
	titles map[string]int
	done   chan string
	block  chan struct{}
}

func newRecordingService() *recordingService {
	return &recordingService{
		titles: make(map[string]int),
		done:   make(chan string, 64),
	}
}

func (s *recordingService) SaveExternal(_ context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	if s.block != nil {
		<-s.block
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.titles[input.Title]++
	s.done <- input.Title
	if s.titles[input.Title] > 1 {
		return nil, domain.ErrMovieExists
	}
	return &domain.Movie{Title: input.Title}, nil
}

func (s *recordingService) List(context.Context, ports.ListMoviesInput) (*ports.ListMoviesResult, error) {
	return nil, nil
}

func (s *recordingService) Create(context.Context, ports.CreateMovieInput) (*domain.Movie, error) {
	return nil, nil
}

func (s *recordingService) Delete(context.Context, string) error {
	return nil
}

func waitFor(t *testing.T, s *recordingService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-s.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for item %d of %d", i+1, n)
		}
	}
}

func TestDispatcher_ProcessesAllItems(t *testing.T) {
	svc := newRecordingService()
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start()
	defer d.Stop(context.Background())

	d.EnqueueBatch([]ports.CreateMovieInput{
		{Title: "Alpha"},
		{Title: "Beta"},
		{Title: "Gamma"},
	})
	waitFor(t, svc, 3)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		if svc.titles[title] != 1 {
			t.Fatalf("expected %q processed once, got %d", title, svc.titles[title])
		}
	}
}

func TestDispatcher_DuplicateTitlesAreSkippedNotRetried(t *testing.T) {
	svc := newRecordingService()
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start()
	defer d.Stop(context.Background())

	d.EnqueueBatch([]ports.CreateMovieInput{
		{Title: "Dune"},
		{Title: "Dune"},
	})
	waitFor(t, svc, 2)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	// Both attempts reach the service (same worker, in order); the second
	// fails the duplicate check and is dropped, never retried.
	if svc.titles["Dune"] != 2 {
		t.Fatalf("expected exactly 2 attempts, got %d", svc.titles["Dune"])
	}
}

func TestDispatcher_SameTitleAlwaysSameWorker(t *testing.T) {
	d := NewDispatcher(8, newRecordingService(), zerolog.Nop())

	first := d.shardIndex("The Dark Knight")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("The Dark Knight"); got != first {
			t.Fatalf("shard index not deterministic: %d vs %d", got, first)
		}
	}
}

func TestDispatcher_StopFlushesAcceptedItems(t *testing.T) {
	svc := newRecordingService()
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start()

	inputs := make([]ports.CreateMovieInput, 0, 10)
	for _, title := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"} {
		inputs = append(inputs, ports.CreateMovieInput{Title: title})
	}
	d.EnqueueBatch(inputs)

	// Stop must not return until every accepted item has been attempted.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Stop(ctx); err != nil {
		t.Fatalf("drain did not complete: %v", err)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.titles) != len(inputs) {
		t.Fatalf("expected %d items attempted, got %d", len(inputs), len(svc.titles))
	}
}

func TestDispatcher_EnqueueAfterStopIsDropped(t *testing.T) {
	svc := newRecordingService()
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start()

	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	d.Enqueue(ports.CreateMovieInput{Title: "Late"})

	select {
	case title := <-svc.done:
		t.Fatalf("item %q processed after stop", title)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDispatcher_StopHonorsDeadline(t *testing.T) {
	svc := newRecordingService()
	svc.block = make(chan struct{})
	defer close(svc.block)

	d := NewDispatcher(1, svc, zerolog.Nop())
	d.Start()
	d.Enqueue(ports.CreateMovieInput{Title: "Stuck"})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := d.Stop(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
}
