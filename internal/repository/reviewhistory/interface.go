package reviewhistory

import (
	"context"
)

type IRepository interface {
	Append(ctx context.Context, userId, asin string) error
}
