package book

import (
	"context"
)

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context, offset int) ([]Book, error)
	Insert(ctx context.Context, b Book) (int, error)
	Delete(ctx context.Context, id int) (int64, error)
}
