package classes

import (
	"context"
	"time"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// classCacheRepository is a read-through redis cache in front of the class
// repository. Classes are reference data mutated rarely and by another
// service, so a short TTL is enough; the school calendar is deliberately
// never cached this way.
type classCacheRepository struct {
	inner contracts.ClassRepository
	redis contracts.RedisRepository
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedClassRepository(inner contracts.ClassRepository, redisRepository contracts.RedisRepository, ttl time.Duration, log *zap.Logger) contracts.ClassRepository {
	return &classCacheRepository{
		inner: inner,
		redis: redisRepository,
		ttl:   ttl,
		log:   log,
	}
}

func (r *classCacheRepository) FindByID(ctx context.Context, classID string) (*models.Class, error) {
	key := constvars.RedisKeyClassPrefix + classID

	cached, err := r.redis.Get(ctx, key)
	if err == nil && cached != "" {
		var class models.Class
		if err := json.Unmarshal([]byte(cached), &class); err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		return &class, nil
	}

	class, err := r.inner.FindByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, nil
	}

	// The lookup already succeeded against mongo, so a failed cache write
	// only costs the next request a cache miss.
	if err := r.redis.Set(ctx, key, class, r.ttl); err != nil {
		r.log.Warn("failed to cache class",
			zap.String(constvars.LoggingClassIDKey, classID),
			zap.Error(err),
		)
	}
	return class, nil
}
