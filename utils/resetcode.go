package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// generateResetCode generates a secure random numeric code of the specified length.
func generateResetCode(length int) (string, error) {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}

func resetCodeKey(email string) string {
	return fmt.Sprintf("reset:%s", email)
}

// InitiateResetCode generates a 6-digit reset code and stores it in Redis with a TTL.
// The caller is responsible for delivering the code to the user.
func InitiateResetCode(email string) (string, error) {
	code, err := generateResetCode(6)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}

	ctx := context.Background()
	client := GetResetCacheClient()
	if err := client.Set(ctx, resetCodeKey(email), code, ResetCodeTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache reset code", zap.Error(err))
		return "", fmt.Errorf("failed to initiate password reset")
	}
	return code, nil
}

// VerifyResetCode checks the provided code against the cached one. On success the
// code is consumed so it cannot be replayed.
func VerifyResetCode(email, providedCode string) error {
	ctx := context.Background()
	client := GetResetCacheClient()

	stored, err := client.Get(ctx, resetCodeKey(email)).Result()
	if err == redis.Nil {
		return fmt.Errorf("reset code expired or not found")
	}
	if err != nil {
		return fmt.Errorf("failed to fetch reset code: %w", err)
	}
	if stored != providedCode {
		return fmt.Errorf("incorrect reset code")
	}

	if err := client.Del(ctx, resetCodeKey(email)).Err(); err != nil {
		GetLogger().Warn("Failed to delete consumed reset code", zap.Error(err))
	}
	return nil
}
