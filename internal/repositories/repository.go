package repositories

import (
	"context"

	"gofund/internal/models"
	"gofund/internal/utils"
)

// Repository is the operation set every entity repository implements,
// regardless of which persistence engine backs it. Services depend on this
// interface only; the concrete adapter is chosen once at startup.
//
// Lookups that may legitimately find nothing (GetDetailByID, GetDetail)
// return (nil, nil) on absence. Operations that promise a resolved entity
// (UpdateByID) return ErrNotFound instead.
type Repository[T any] interface {
	// GetAll returns every entity matching filter. A nil filter matches all.
	GetAll(ctx context.Context, filter Filter, opts *QueryOptions) ([]T, error)

	// GetDetailByID looks an entity up by its internal key.
	GetDetailByID(ctx context.Context, id models.ID) (*T, error)

	// GetDetail returns the first entity matching filter.
	GetDetail(ctx context.Context, filter Filter, opts *QueryOptions) (*T, error)

	// Insert creates the entity, assigning its internal key and public
	// identifier. The caller never supplies either.
	Insert(ctx context.Context, entity *T) (*T, error)

	// UpdateByID applies a partial update and returns the updated entity.
	UpdateByID(ctx context.Context, id models.ID, update Update) (*T, error)

	// UpdateMany applies a partial update to every entity matching filter.
	// count is the number of records matched at the moment of the write;
	// updated is a re-read by the same filter after the write, so it reflects
	// post-update state (the two can diverge when update touches a field the
	// filter depends on).
	UpdateMany(ctx context.Context, filter Filter, update Update) (int64, []T, error)

	// DeleteByID removes the record, reporting whether one existed. Store
	// rejections (missing row, referential constraint) surface as false, not
	// as an error.
	DeleteByID(ctx context.Context, id models.ID) (bool, error)

	// DeleteMany removes every entity matching filter and returns the
	// pre-delete snapshot alongside the removed count.
	DeleteMany(ctx context.Context, filter Filter) (int64, []T, error)

	// Count returns the number of entities matching filter.
	Count(ctx context.Context, filter Filter) (int64, error)

	// Exists reports whether at least one entity matches filter.
	Exists(ctx context.Context, filter Filter) (bool, error)

	// FindWithPagination runs the filtered page read and the total count
	// concurrently, both with the same filter, and folds them into one page.
	FindWithPagination(ctx context.Context, filter Filter, params *utils.PaginationParams) (*PaginatedResult[T], error)
}

// PaginatedResult is one page of entities plus its page metadata.
type PaginatedResult[T any] struct {
	Items      []T                   `json:"items"`
	Pagination *utils.PaginationMeta `json:"pagination"`
}
