package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"masalog-backend/config"
	"masalog-backend/internal/client"
	"masalog-backend/internal/parser"
	"masalog-backend/internal/store"
)

var (
	ErrFetchInProgress = errors.New("a fetch is already in progress")
	ErrEmptyLogName    = errors.New("log name is required")
)

// FetchState is the fetch lifecycle: Idle -> Fetching -> {Done, Failed}.
// Only one fetch runs at a time; a second trigger is rejected, never queued.
type FetchState int32

const (
	FetchIdle FetchState = iota
	FetchFetching
	FetchDone
	FetchFailed
)

func (s FetchState) String() string {
	switch s {
	case FetchIdle:
		return "idle"
	case FetchFetching:
		return "fetching"
	case FetchDone:
		return "done"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type FetchService interface {
	// Fetch pulls the named log, extracts its records and replaces the
	// store's result set. Returns the extracted record count.
	Fetch(ctx context.Context, logName string, testEnv bool) (int, error)
	State() FetchState
}

type fetchService struct {
	client    client.LogAPIClient
	extractor *parser.Extractor
	store     *store.ResultStore
	timeout   time.Duration

	fetchLock sync.Mutex
	state     atomic.Int32
}

func NewFetchService(
	cfg *config.Config,
	apiClient client.LogAPIClient,
	extractor *parser.Extractor,
	resultStore *store.ResultStore,
) FetchService {
	timeout := cfg.LogAPI.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &fetchService{
		client:    apiClient,
		extractor: extractor,
		store:     resultStore,
		timeout:   timeout,
	}
}

func (s *fetchService) Fetch(ctx context.Context, logName string, testEnv bool) (int, error) {
	if logName == "" {
		return 0, ErrEmptyLogName
	}
	if !s.fetchLock.TryLock() {
		log.Warn().Str("log_name", logName).Msg("Fetch already in progress, rejecting trigger")
		return 0, ErrFetchInProgress
	}
	defer s.fetchLock.Unlock()

	s.state.Store(int32(FetchFetching))
	log.Info().Str("log_name", logName).Bool("test_env", testEnv).Msg("Starting log fetch")
	startedAt := time.Now()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.client.FetchRaw(ctx, logName, testEnv)
	if err != nil {
		s.state.Store(int32(FetchFailed))
		return 0, err
	}

	records := s.extractor.ExtractAll(raw)
	s.store.ReplaceRecords(records)
	s.state.Store(int32(FetchDone))

	log.Info().
		Str("log_name", logName).
		Int("record_count", len(records)).
		Dur("elapsed", time.Since(startedAt)).
		Msg("Log fetch finished")
	return len(records), nil
}

func (s *fetchService) State() FetchState {
	return FetchState(s.state.Load())
}
