package port

import (
	"context"

	"github.com/nikolayk812/tipkart/internal/domain"
)

type OrderTracker interface {
	Track(ctx context.Context, orderNumber string) (domain.Tracking, error)
}
