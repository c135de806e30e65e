package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/config"
	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/repository"
	"github.com/popeskul/clinic-channel-gateway/internal/scheduler"
)

const externalIDCacheTTL = 24 * time.Hour

// providerRequest is the JSON body posted to a channel's provider endpoint.
type providerRequest struct {
	To      string `json:"to"`
	Content string `json:"content"`
}

// providerResponse is the provider's acknowledgment of an accepted send.
type providerResponse struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

type dispatcherService struct {
	cfg            *config.Config
	repo           repository.Repository
	redisClient    *redis.Client
	httpClient     *http.Client
	circuitBreaker *CircuitBreaker
	sched          *scheduler.Scheduler
	logger         *zap.Logger
}

// NewDispatcherService builds the background dispatcher that delivers
// queued log entries to provider endpoints.
func NewDispatcherService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) DispatcherService {
	svc := &dispatcherService{
		cfg:         cfg,
		repo:        repo,
		redisClient: redisClient,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Provider.Timeout) * time.Second,
		},
		circuitBreaker: NewCircuitBreaker(&cfg.Provider.CircuitBreaker, logger),
		logger:         logger,
	}

	interval := time.Duration(cfg.Scheduler.DispatchIntervalSeconds) * time.Second
	svc.sched = scheduler.NewScheduler(logger, "dispatcher", interval, func(ctx context.Context) error {
		return svc.DispatchQueued()
	})

	return svc
}

func (s *dispatcherService) Start() error {
	return s.sched.Start(context.Background())
}

func (s *dispatcherService) Stop() error {
	return s.sched.Stop()
}

func (s *dispatcherService) IsRunning() bool {
	return s.sched.IsRunning()
}

// DispatchQueued delivers a batch of queued entries. Entries whose
// channel is no longer active stay queued for a later cycle.
func (s *dispatcherService) DispatchQueued() error {
	entries, err := s.repo.MessageLog().GetQueued(s.cfg.Scheduler.DispatchBatchSize)
	if err != nil {
		return fmt.Errorf("failed to get queued entries: %w", err)
	}

	if len(entries) == 0 {
		return nil
	}

	s.logger.Info("Dispatching queued messages", zap.Int("count", len(entries)))

	for _, entry := range entries {
		if err := s.dispatchEntry(entry); err != nil {
			s.logger.Error("Failed to dispatch entry",
				zap.String("entry_id", entry.ID),
				zap.String("channel_id", entry.ChannelID),
				zap.Error(err))
		}
	}

	return nil
}

func (s *dispatcherService) dispatchEntry(entry *models.MessageLogEntry) error {
	ch, err := s.repo.Channel().GetByID(entry.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to load channel: %w", err)
	}

	if ch.Status != models.ChannelStatusActive {
		s.logger.Debug("Channel not active, leaving entry queued",
			zap.String("entry_id", entry.ID),
			zap.String("channel_status", string(ch.Status)))
		return nil
	}

	var externalID string
	err = s.circuitBreaker.Execute(context.Background(), func() error {
		id, callErr := s.callProvider(ch, entry)
		if callErr != nil {
			return callErr
		}
		externalID = id
		return nil
	})

	if err != nil {
		errMsg := err.Error()
		if updateErr := s.repo.MessageLog().UpdateStatus(entry.ID, models.MessageStatusFailed, &errMsg); updateErr != nil {
			s.logger.Error("Failed to mark entry failed",
				zap.String("entry_id", entry.ID),
				zap.Error(updateErr))
		}
		return err
	}

	if err := s.repo.MessageLog().MarkSent(entry.ID, externalID); err != nil {
		return fmt.Errorf("failed to mark entry sent: %w", err)
	}

	s.cacheExternalID(externalID, entry.ID)

	s.logger.Info("Message dispatched",
		zap.String("entry_id", entry.ID),
		zap.String("external_id", externalID))

	return nil
}

func (s *dispatcherService) callProvider(ch *models.Channel, entry *models.MessageLogEntry) (string, error) {
	body, err := json.Marshal(providerRequest{
		To:      entry.Recipient,
		Content: entry.Content,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal provider request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, ch.EndpointURL, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create provider request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if ch.AuthKey.Valid {
		req.Header.Set("x-auth-key", ch.AuthKey.String)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call provider: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.logger.Warn("Failed to close response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("unexpected provider status code: %d", resp.StatusCode)
	}

	var provResp providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&provResp); err != nil || provResp.MessageID == "" {
		// Some providers acknowledge without a body; synthesize an id so
		// callbacks can still correlate.
		provResp.MessageID = fmt.Sprintf("local-%s-%d", entry.ID, time.Now().Unix())
	}

	return provResp.MessageID, nil
}

func externalIDKey(externalID string) string {
	return fmt.Sprintf("dispatch:ext:%s", externalID)
}

func (s *dispatcherService) cacheExternalID(externalID, entryID string) {
	err := s.redisClient.Set(context.Background(), externalIDKey(externalID), entryID, externalIDCacheTTL).Err()
	if err != nil {
		s.logger.Warn("Failed to cache external message id",
			zap.String("external_id", externalID),
			zap.Error(err))
	}
}

// HandleDeliveryCallback applies a provider delivery-status report to the
// matching log entry. Within a channel, transitions apply in callback
// order; duplicates are no-ops, backward moves are rejected upstream by
// the repository guard.
func (s *dispatcherService) HandleDeliveryCallback(externalID string, status models.MessageStatus, errorMsg *string) error {
	if !models.ValidMessageStatus(status) || status == models.MessageStatusQueued {
		return fmt.Errorf("%w: status %q is not a valid callback status", ErrInvalidConfig, status)
	}

	entryID, err := s.redisClient.Get(context.Background(), externalIDKey(externalID)).Result()
	if err != nil {
		// Cache miss or Redis down; resolve against the log.
		entry, dbErr := s.repo.MessageLog().GetByExternalID(externalID)
		if errors.Is(dbErr, repository.ErrNotFound) {
			return ErrUnknownMessage
		}
		if dbErr != nil {
			return fmt.Errorf("failed to resolve external id: %w", dbErr)
		}
		entryID = entry.ID
	}

	if err := s.repo.MessageLog().UpdateStatus(entryID, status, errorMsg); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnknownMessage
		}
		return err
	}

	s.logger.Info("Delivery status applied",
		zap.String("external_id", externalID),
		zap.String("entry_id", entryID),
		zap.String("status", string(status)))

	return nil
}

func (s *dispatcherService) CircuitBreakerStatus() (state CircuitBreakerState, requests, failures uint32) {
	state = s.circuitBreaker.GetState()
	requests, failures = s.circuitBreaker.GetCounts()
	return
}
