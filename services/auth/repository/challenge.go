package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	"github.com/cutiepets/admin/internal/pkg/constants"
	"github.com/cutiepets/admin/internal/pkg/models"
)

// compareAndDeleteScript deletes the key only if it still holds the given
// value, so a concurrently reissued challenge is never consumed by mistake.
const compareAndDeleteScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`

// PutChallenge stores the challenge as JSON, replacing any prior challenge
// for the same email
func (r *ChallengeRepo) PutChallenge(ctx context.Context, challenge *models.OtpChallenge, ttl time.Duration) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	key := fmt.Sprintf(constants.KeyOtpChallenge, challenge.Email)
	if err := r.redis.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}

	return nil
}

// GetChallenge returns the pending challenge for the email
func (r *ChallengeRepo) GetChallenge(ctx context.Context, email string) (*models.OtpChallenge, error) {
	key := fmt.Sprintf(constants.KeyOtpChallenge, email)

	data, err := r.redis.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.ErrNoChallenge
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	var challenge models.OtpChallenge
	if err := json.Unmarshal([]byte(data), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &challenge, nil
}

// CompareAndDeleteChallenge removes the challenge only if the stored value
// still matches the given one
func (r *ChallengeRepo) CompareAndDeleteChallenge(ctx context.Context, challenge *models.OtpChallenge) (bool, error) {
	data, err := json.Marshal(challenge)
	if err != nil {
		return false, fmt.Errorf("failed to marshal challenge: %w", err)
	}

	key := fmt.Sprintf(constants.KeyOtpChallenge, challenge.Email)
	res, err := r.redis.Eval(ctx, compareAndDeleteScript, []string{key}, string(data))
	if err != nil {
		return false, fmt.Errorf("failed to consume challenge: %w", err)
	}

	deleted, ok := res.(int64)
	if !ok {
		return false, fmt.Errorf("unexpected script result type %T", res)
	}

	return deleted == 1, nil
}

// DeleteChallenge removes the challenge unconditionally
func (r *ChallengeRepo) DeleteChallenge(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyOtpChallenge, email)
	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}
	return nil
}

// PutResetGrant records a successful verification for the email
func (r *ChallengeRepo) PutResetGrant(ctx context.Context, email string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyResetGrant, email)
	if err := r.redis.Set(ctx, key, "1", ttl); err != nil {
		return fmt.Errorf("failed to store reset grant: %w", err)
	}
	return nil
}

// ConsumeResetGrant removes the grant, failing if none exists
func (r *ChallengeRepo) ConsumeResetGrant(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyResetGrant, email)

	deleted, err := r.redis.Client.Del(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to consume reset grant: %w", err)
	}
	if deleted == 0 {
		return apperr.ErrNoResetGrant
	}

	return nil
}
