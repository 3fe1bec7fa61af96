// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/schoolform/order-service/internal/domain/model"
)

// OrdersRepositoryInterface defines the interface for order archive operations.
type OrdersRepositoryInterface interface {
	Create(ctx context.Context, order *model.Order) error
	GetByOrderID(ctx context.Context, orderID string) (*OrderDocument, error)
	List(ctx context.Context, limit int) ([]OrderDocument, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
