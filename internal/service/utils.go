package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	numberSuffixLen  = 6
	numberMaxRetries = 5
	numberAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// generateNumber возвращает номер вида PREFIX-YYYYMMDD-XXXXXX.
func generateNumber(prefix string, now time.Time) string {
	suffix := make([]byte, numberSuffixLen)
	for i := range suffix {
		suffix[i] = numberAlphabet[rand.IntN(len(numberAlphabet))] //nolint:gosec
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format("20060102"), suffix)
}

// allocateNumber генерирует номер, пока exists не вернет false. После numberMaxRetries коллизий
// возвращает exhausted.
func allocateNumber(
	ctx context.Context,
	prefix string,
	now time.Time,
	exists func(ctx context.Context, number string) (bool, error),
	exhausted error,
) (string, error) {
	for range numberMaxRetries {
		number := generateNumber(prefix, now)
		taken, err := exists(ctx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}
	return "", exhausted
}
