package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) (*CacheObject, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCacheObject(client, zap.NewNop()), mr
}

func TestMembershipCache_AddAndGet(t *testing.T) {
	red, mr := newTestCache(t)
	mc := NewMembershipCache(red, 10*time.Minute)
	membership := &model.Membership{OrgId: uuid.New(), UserId: uuid.New(), Role: model.RoleAdmin, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	response := mc.AddMembershipCache(context.Background(), membership)
	require.True(t, response.Success)
	key := membershipKey(membership.OrgId, membership.UserId)
	assert.Equal(t, 10*time.Minute, mr.TTL(key))
	response = mc.GetMembershipCache(context.Background(), membership.OrgId, membership.UserId)
	require.True(t, response.Success)
	assert.Equal(t, membership, response.Data.Membership)
}

func TestMembershipCache_Miss(t *testing.T) {
	red, _ := newTestCache(t)
	mc := NewMembershipCache(red, time.Minute)
	response := mc.GetMembershipCache(context.Background(), uuid.New(), uuid.New())
	assert.False(t, response.Success)
	assert.Nil(t, response.Errors)
}

func TestMembershipCache_Expired(t *testing.T) {
	red, mr := newTestCache(t)
	mc := NewMembershipCache(red, time.Minute)
	membership := &model.Membership{OrgId: uuid.New(), UserId: uuid.New(), Role: model.RoleLearner}
	require.True(t, mc.AddMembershipCache(context.Background(), membership).Success)
	mr.FastForward(2 * time.Minute)
	response := mc.GetMembershipCache(context.Background(), membership.OrgId, membership.UserId)
	assert.False(t, response.Success)
	assert.Nil(t, response.Errors)
}

func TestMembershipCache_CorruptedEntry(t *testing.T) {
	red, mr := newTestCache(t)
	mc := NewMembershipCache(red, time.Minute)
	orgid, userid := uuid.New(), uuid.New()
	require.NoError(t, mr.Set(membershipKey(orgid, userid), "{not-json"))
	response := mc.GetMembershipCache(context.Background(), orgid, userid)
	assert.False(t, response.Success)
	require.NotNil(t, response.Errors)
	assert.Equal(t, erro.ServerErrorType, response.Errors.Type)
}

func TestMembershipCache_Unavailable(t *testing.T) {
	red, mr := newTestCache(t)
	mc := NewMembershipCache(red, time.Minute)
	mr.Close()
	response := mc.GetMembershipCache(context.Background(), uuid.New(), uuid.New())
	assert.False(t, response.Success)
	require.NotNil(t, response.Errors)
	assert.Equal(t, erro.ServerErrorType, response.Errors.Type)
}

func TestBookingLock_AcquireAndRelease(t *testing.T) {
	red, mr := newTestCache(t)
	bl := NewBookingLock(red, 5*time.Second, 1, 10*time.Millisecond)
	instructorid := uuid.New()
	first := bl.AcquireBookingLock(context.Background(), instructorid)
	require.True(t, first.Success)
	require.NotEmpty(t, first.Data.LockToken)
	assert.Equal(t, 5*time.Second, mr.TTL(bookingLockKey(instructorid)))

	second := bl.AcquireBookingLock(context.Background(), instructorid)
	assert.False(t, second.Success)
	assert.Equal(t, erro.ConflictError(erro.ErrorBookingInProgress), second.Errors)

	other := bl.AcquireBookingLock(context.Background(), uuid.New())
	assert.True(t, other.Success)

	require.True(t, bl.ReleaseBookingLock(context.Background(), instructorid, first.Data.LockToken).Success)
	assert.False(t, mr.Exists(bookingLockKey(instructorid)))
	assert.True(t, bl.AcquireBookingLock(context.Background(), instructorid).Success)
}

func TestBookingLock_ReleaseKeepsForeignToken(t *testing.T) {
	red, mr := newTestCache(t)
	bl := NewBookingLock(red, 5*time.Second, 0, time.Millisecond)
	instructorid := uuid.New()
	require.True(t, bl.AcquireBookingLock(context.Background(), instructorid).Success)
	response := bl.ReleaseBookingLock(context.Background(), instructorid, "stale-token")
	assert.True(t, response.Success)
	assert.True(t, mr.Exists(bookingLockKey(instructorid)))
}

func TestBookingLock_ExpiresAfterTTL(t *testing.T) {
	red, mr := newTestCache(t)
	bl := NewBookingLock(red, time.Second, 0, time.Millisecond)
	instructorid := uuid.New()
	require.True(t, bl.AcquireBookingLock(context.Background(), instructorid).Success)
	mr.FastForward(2 * time.Second)
	assert.True(t, bl.AcquireBookingLock(context.Background(), instructorid).Success)
}

func TestBookingLock_Unavailable(t *testing.T) {
	red, mr := newTestCache(t)
	bl := NewBookingLock(red, time.Second, 0, time.Millisecond)
	mr.Close()
	response := bl.AcquireBookingLock(context.Background(), uuid.New())
	assert.False(t, response.Success)
	require.NotNil(t, response.Errors)
	assert.Equal(t, erro.ServerErrorType, response.Errors.Type)
}
