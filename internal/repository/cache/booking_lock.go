package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/metrics"
	"github.com/fredymanu76/lms-platform-sub001/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type BookingLock struct {
	cacheclient *CacheObject
	ttl         time.Duration
	retries     int
	retrydelay  time.Duration
}

func NewBookingLock(red *CacheObject, ttl time.Duration, retries int, retrydelay time.Duration) *BookingLock {
	return &BookingLock{cacheclient: red, ttl: ttl, retries: retries, retrydelay: retrydelay}
}

func bookingLockKey(instructorid uuid.UUID) string {
	return "booking-lock:" + instructorid.String()
}

// AcquireBookingLock serializes bookings per instructor. A lock that stays held
// through every retry yields a Conflict.
func (bl *BookingLock) AcquireBookingLock(ctx context.Context, instructorid uuid.UUID) *repository.RepositoryResponse {
	const place = repository.AcquireBookingLock
	start := time.Now()
	defer metrics.CacheMetrics(place, start)
	token := uuid.New().String()
	key := bookingLockKey(instructorid)
	for attempt := 0; attempt <= bl.retries; attempt++ {
		ok, err := bl.cacheclient.connect.SetNX(ctx, key, token, bl.ttl).Result()
		if err != nil {
			metrics.ClassroomCacheErrorsTotal.WithLabelValues("SETNX").Inc()
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorSetLock, err)), place)
		}
		if ok {
			return repository.SuccessResponse(repository.Data{LockToken: token}, place, "Successful acquire booking lock")
		}
		if attempt == bl.retries {
			break
		}
		select {
		case <-ctx.Done():
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorSetLock, ctx.Err())), place)
		case <-time.After(bl.retrydelay):
		}
	}
	metrics.ClassroomBookingConflictsTotal.WithLabelValues("lock").Inc()
	return repository.BadResponse(erro.ConflictError(erro.ErrorBookingInProgress), place)
}

func (bl *BookingLock) ReleaseBookingLock(ctx context.Context, instructorid uuid.UUID, token string) *repository.RepositoryResponse {
	const place = repository.ReleaseBookingLock
	start := time.Now()
	defer metrics.CacheMetrics(place, start)
	deleted, err := releaseScript.Run(ctx, bl.cacheclient.connect, []string{bookingLockKey(instructorid)}, token).Int()
	if err != nil {
		metrics.ClassroomCacheErrorsTotal.WithLabelValues("EVAL").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorDelLock, err)), place)
	}
	if deleted == 0 {
		return repository.SuccessResponse(repository.Data{}, place, "Booking lock was already expired")
	}
	return repository.SuccessResponse(repository.Data{}, place, "Successful release booking lock")
}
