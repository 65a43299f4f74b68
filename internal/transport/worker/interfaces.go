package worker

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import "context"

type Expirer interface {
	ExpireOverdue(ctx context.Context, limit uint) (int, error)
}
