package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/metrics"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
	"github.com/fredymanu76/lms-platform-sub001/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type MembershipCache struct {
	cacheclient *CacheObject
	ttl         time.Duration
}

func NewMembershipCache(red *CacheObject, ttl time.Duration) *MembershipCache {
	return &MembershipCache{cacheclient: red, ttl: ttl}
}

func membershipKey(orgid uuid.UUID, userid uuid.UUID) string {
	return "membership:" + orgid.String() + ":" + userid.String()
}

func (mc *MembershipCache) AddMembershipCache(ctx context.Context, membership *model.Membership) *repository.RepositoryResponse {
	const place = repository.AddMembershipCache
	start := time.Now()
	jsondata, err := json.Marshal(membership)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorMarshal, err)), place)
	}
	defer metrics.CacheMetrics(place, start)
	err = mc.cacheclient.connect.Set(ctx, membershipKey(membership.OrgId, membership.UserId), jsondata, mc.ttl).Err()
	if err != nil {
		metrics.ClassroomCacheErrorsTotal.WithLabelValues("SET").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorSetMembership, err)), place)
	}
	return repository.SuccessResponse(repository.Data{}, place, "Successful add membership in cache")
}

// GetMembershipCache reports a miss as an unsuccessful response without errors.
func (mc *MembershipCache) GetMembershipCache(ctx context.Context, orgid uuid.UUID, userid uuid.UUID) *repository.RepositoryResponse {
	const place = repository.GetMembershipCache
	start := time.Now()
	defer metrics.CacheMetrics(place, start)
	result, err := mc.cacheclient.connect.Get(ctx, membershipKey(orgid, userid)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &repository.RepositoryResponse{Success: false, SuccessMessage: "Membership was not found in the cache", Place: place}
		}
		metrics.ClassroomCacheErrorsTotal.WithLabelValues("GET").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorGetMembership, err)), place)
	}
	var membership model.Membership
	err = json.Unmarshal([]byte(result), &membership)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorUnmarshal, err)), place)
	}
	return repository.SuccessResponse(repository.Data{Membership: &membership}, place, "Successful get membership from cache")
}
