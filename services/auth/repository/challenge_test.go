package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	"github.com/cutiepets/admin/internal/pkg/database"
	"github.com/cutiepets/admin/internal/pkg/models"
)

func setupChallengeRepoTest(t *testing.T) (*ChallengeRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewChallengeRepo(&database.RedisClient{Client: client}), mr
}

func testChallenge(email string) *models.OtpChallenge {
	now := time.Now().Truncate(time.Second)
	return &models.OtpChallenge{
		Email:     email,
		Code:      "123456",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}
}

func TestChallengeRepo_PutAndGet(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	ctx := context.Background()

	challenge := testChallenge("admin@cutiepets.com")
	require.NoError(t, repo.PutChallenge(ctx, challenge, 10*time.Minute))

	assert.True(t, mr.Exists("auth:otp:admin@cutiepets.com"))

	got, err := repo.GetChallenge(ctx, "admin@cutiepets.com")
	require.NoError(t, err)
	assert.Equal(t, challenge.Code, got.Code)
	assert.True(t, challenge.ExpiresAt.Equal(got.ExpiresAt))
}

func TestChallengeRepo_GetMissing(t *testing.T) {
	repo, _ := setupChallengeRepoTest(t)

	got, err := repo.GetChallenge(context.Background(), "ghost@cutiepets.com")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperr.ErrNoChallenge)
}

func TestChallengeRepo_PutReplacesPrior(t *testing.T) {
	repo, _ := setupChallengeRepoTest(t)
	ctx := context.Background()

	first := testChallenge("admin@cutiepets.com")
	require.NoError(t, repo.PutChallenge(ctx, first, 10*time.Minute))

	second := testChallenge("admin@cutiepets.com")
	second.Code = "654321"
	require.NoError(t, repo.PutChallenge(ctx, second, 10*time.Minute))

	got, err := repo.GetChallenge(ctx, "admin@cutiepets.com")
	require.NoError(t, err)
	assert.Equal(t, "654321", got.Code)
}

func TestChallengeRepo_CompareAndDelete(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	ctx := context.Background()

	challenge := testChallenge("admin@cutiepets.com")
	require.NoError(t, repo.PutChallenge(ctx, challenge, 10*time.Minute))

	removed, err := repo.CompareAndDeleteChallenge(ctx, challenge)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, mr.Exists("auth:otp:admin@cutiepets.com"))

	// Second consume finds nothing
	removed, err = repo.CompareAndDeleteChallenge(ctx, challenge)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestChallengeRepo_CompareAndDelete_Reissued(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	ctx := context.Background()

	stale := testChallenge("admin@cutiepets.com")
	require.NoError(t, repo.PutChallenge(ctx, stale, 10*time.Minute))

	fresh := testChallenge("admin@cutiepets.com")
	fresh.Code = "654321"
	require.NoError(t, repo.PutChallenge(ctx, fresh, 10*time.Minute))

	// Consuming with the stale value must not remove the fresh challenge
	removed, err := repo.CompareAndDeleteChallenge(ctx, stale)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.True(t, mr.Exists("auth:otp:admin@cutiepets.com"))
}

func TestChallengeRepo_Delete(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.PutChallenge(ctx, testChallenge("admin@cutiepets.com"), 10*time.Minute))
	require.NoError(t, repo.DeleteChallenge(ctx, "admin@cutiepets.com"))
	assert.False(t, mr.Exists("auth:otp:admin@cutiepets.com"))
}

func TestChallengeRepo_StoreTTL(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.PutChallenge(ctx, testChallenge("admin@cutiepets.com"), 10*time.Minute))
	assert.Equal(t, 10*time.Minute, mr.TTL("auth:otp:admin@cutiepets.com"))

	// Once the store TTL lapses the entry is gone entirely
	mr.FastForward(11 * time.Minute)
	_, err := repo.GetChallenge(ctx, "admin@cutiepets.com")
	assert.ErrorIs(t, err, apperr.ErrNoChallenge)
}

func TestChallengeRepo_ResetGrant(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.PutResetGrant(ctx, "admin@cutiepets.com", 10*time.Minute))
	assert.True(t, mr.Exists("auth:reset:admin@cutiepets.com"))

	require.NoError(t, repo.ConsumeResetGrant(ctx, "admin@cutiepets.com"))
	assert.False(t, mr.Exists("auth:reset:admin@cutiepets.com"))

	// Grants are single-use
	err := repo.ConsumeResetGrant(ctx, "admin@cutiepets.com")
	assert.ErrorIs(t, err, apperr.ErrNoResetGrant)
}
