package competitorcache

import (
	"context"
)

type IRepository interface {
	Get(ctx context.Context, productName, manufacturer string) ([]string, error)
	Put(ctx context.Context, productName, manufacturer string, names []string) error
}
