// internal/session/store.go

// Package session persists the latest analysis under a fixed session key so
// the dashboard can reload it. Redis is the only storage the service talks
// to; there is no relational persistence.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"onboarding-engine/internal/common/database"
	commonerrors "onboarding-engine/internal/common/errors"
	"onboarding-engine/internal/common/logger"
	"onboarding-engine/internal/models"
)

const analysisKey = "onboarding:analysis:current"

// Record is what gets persisted per analysis: the validated result plus the
// originating profile, both serialized as-is.
type Record struct {
	Profile *models.BusinessProfile `json:"profile"`
	Result  *models.AnalysisResult  `json:"result"`
	SavedAt time.Time               `json:"savedAt"`
}

type Store struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewStore(redis *database.RedisClient, ttl time.Duration, log logger.Logger) *Store {
	return &Store{
		redis:  redis,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "session"}),
	}
}

// SaveAnalysis stores the record under the fixed session key.
func (s *Store) SaveAnalysis(ctx context.Context, record *Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return commonerrors.NewSessionStoreFailedError(err)
	}

	if err := s.redis.Set(ctx, analysisKey, data, s.ttl); err != nil {
		s.logger.Error("failed to persist analysis session", map[string]interface{}{
			"error": err.Error(),
		})
		return commonerrors.NewSessionStoreFailedError(err)
	}

	s.logger.Debug("analysis session saved", map[string]interface{}{
		"business": record.Profile.BusinessName,
	})
	return nil
}

// LoadAnalysis returns the stored record, or nil when no session exists.
func (s *Store) LoadAnalysis(ctx context.Context) (*Record, error) {
	data, err := s.redis.Get(ctx, analysisKey)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, commonerrors.NewSessionStoreFailedError(err)
	}

	var record Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, commonerrors.NewSessionStoreFailedError(err)
	}
	return &record, nil
}

// Clear removes the stored session.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.redis.Del(ctx, analysisKey); err != nil {
		return commonerrors.NewSessionStoreFailedError(err)
	}
	return nil
}
