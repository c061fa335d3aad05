package gormdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gofund/internal/models"
	"gofund/internal/repositories"
	"gofund/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Meta parameterizes the adapter per entity: the table it maps to, the column
// projection returned on reads, the free-text search columns, and an optional
// per-entity filter rewrite.
type Meta[E any] struct {
	Table         string
	Select        []string
	SearchFields  []string
	ConvertFilter func(repositories.Filter) repositories.Filter
}

// Repository implements the generic contract against a relational store
// through GORM. One instance exists per entity, built from Meta at startup.
type Repository[E any, PE interface {
	*E
	models.Entity
}] struct {
	db   *gorm.DB
	meta Meta[E]
}

func New[E any, PE interface {
	*E
	models.Entity
}](db *gorm.DB, meta Meta[E]) *Repository[E, PE] {
	return &Repository[E, PE]{db: db, meta: meta}
}

func (r *Repository[E, PE]) convert(filter repositories.Filter) repositories.Filter {
	if r.meta.ConvertFilter != nil {
		return r.meta.ConvertFilter(filter)
	}
	return filter
}

func (r *Repository[E, PE]) query(ctx context.Context, filter repositories.Filter) *gorm.DB {
	tx := r.db.WithContext(ctx).Table(r.meta.Table).Model(new(E))
	return ApplyFilter(tx, r.convert(filter))
}

func (r *Repository[E, PE]) applyOptions(tx *gorm.DB, opts *repositories.QueryOptions) *gorm.DB {
	if opts == nil {
		if len(r.meta.Select) > 0 {
			tx = tx.Select(r.meta.Select)
		}
		return tx
	}
	if len(opts.Select) > 0 {
		tx = tx.Select(opts.Select)
	} else if len(r.meta.Select) > 0 {
		tx = tx.Select(r.meta.Select)
	}
	if opts.Skip > 0 {
		tx = tx.Offset(int(opts.Skip))
	}
	if opts.Limit > 0 {
		tx = tx.Limit(int(opts.Limit))
	}
	tx = applySort(tx, opts.Sort)
	return tx
}

func (r *Repository[E, PE]) GetAll(ctx context.Context, filter repositories.Filter, opts *repositories.QueryOptions) ([]E, error) {
	var items []E
	tx := r.applyOptions(r.query(ctx, filter), opts)
	if err := tx.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.meta.Table, err)
	}
	if opts.WantsPopulate("language") {
		if err := r.populateLanguages(ctx, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *Repository[E, PE]) GetDetailByID(ctx context.Context, id models.ID) (*E, error) {
	return r.GetDetail(ctx, repositories.Filter{"id": string(id)}, nil)
}

func (r *Repository[E, PE]) GetDetail(ctx context.Context, filter repositories.Filter, opts *repositories.QueryOptions) (*E, error) {
	var entity E
	tx := r.applyOptions(r.query(ctx, filter), opts)
	if err := tx.Take(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", r.meta.Table, err)
	}
	if opts.WantsPopulate("language") {
		items := []E{entity}
		if err := r.populateLanguages(ctx, items); err != nil {
			return nil, err
		}
		entity = items[0]
	}
	return &entity, nil
}

func (r *Repository[E, PE]) Insert(ctx context.Context, entity *E) (*E, error) {
	pe := PE(entity)
	pe.SetID(models.ID(uuid.NewString()))
	pe.SetPublicID(models.PublicID(uuid.NewString()))
	pe.Touch(time.Now())

	if err := r.db.WithContext(ctx).Table(r.meta.Table).Create(entity).Error; err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", r.meta.Table, err)
	}
	return entity, nil
}

func (r *Repository[E, PE]) UpdateByID(ctx context.Context, id models.ID, update repositories.Update) (*E, error) {
	existing, err := r.GetDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, repositories.ErrNotFound
	}

	update["updated_at"] = time.Now()
	tx := r.db.WithContext(ctx).Table(r.meta.Table).Where("id = ?", string(id))
	if err := tx.Updates(map[string]interface{}(update)).Error; err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", r.meta.Table, err)
	}
	return r.GetDetailByID(ctx, id)
}

// UpdateMany mutates then re-reads by the same filter; GORM's bulk update does
// not return row content, so updated reflects post-update state.
func (r *Repository[E, PE]) UpdateMany(ctx context.Context, filter repositories.Filter, update repositories.Update) (int64, []E, error) {
	update["updated_at"] = time.Now()
	res := r.query(ctx, filter).Updates(map[string]interface{}(update))
	if res.Error != nil {
		return 0, nil, fmt.Errorf("failed to bulk update %s: %w", r.meta.Table, res.Error)
	}
	updated, err := r.GetAll(ctx, filter, nil)
	if err != nil {
		return res.RowsAffected, nil, err
	}
	return res.RowsAffected, updated, nil
}

func (r *Repository[E, PE]) DeleteByID(ctx context.Context, id models.ID) (bool, error) {
	res := r.db.WithContext(ctx).Table(r.meta.Table).Where("id = ?", string(id)).Delete(new(E))
	if res.Error != nil {
		if errors.Is(res.Error, context.Canceled) || errors.Is(res.Error, context.DeadlineExceeded) {
			return false, res.Error
		}
		// Store rejections (missing row, referential constraint) surface as false.
		return false, nil
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository[E, PE]) DeleteMany(ctx context.Context, filter repositories.Filter) (int64, []E, error) {
	snapshot, err := r.GetAll(ctx, filter, nil)
	if err != nil {
		return 0, nil, err
	}
	res := r.query(ctx, filter).Delete(new(E))
	if res.Error != nil {
		return 0, nil, fmt.Errorf("failed to bulk delete %s: %w", r.meta.Table, res.Error)
	}
	return res.RowsAffected, snapshot, nil
}

func (r *Repository[E, PE]) Count(ctx context.Context, filter repositories.Filter) (int64, error) {
	var count int64
	if err := r.query(ctx, filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.meta.Table, err)
	}
	return count, nil
}

func (r *Repository[E, PE]) Exists(ctx context.Context, filter repositories.Filter) (bool, error) {
	var entity E
	err := r.query(ctx, filter).Select("id").Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existence in %s: %w", r.meta.Table, err)
	}
	return true, nil
}

func (r *Repository[E, PE]) FindWithPagination(ctx context.Context, filter repositories.Filter, params *utils.PaginationParams) (*repositories.PaginatedResult[E], error) {
	if params == nil {
		params = &utils.PaginationParams{}
	}
	params.Normalize()

	if params.Search != "" {
		filter = repositories.MergeFilters(filter, repositories.SearchFilter(params.Search, r.meta.SearchFields))
	}

	opts := &repositories.QueryOptions{
		Skip:  params.GetSkip(),
		Limit: params.GetLimit(),
		Sort:  params.GetSortMap(),
	}

	var (
		items []E
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = r.GetAll(gctx, filter, opts)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = r.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &repositories.PaginatedResult[E]{
		Items:      items,
		Pagination: utils.CreatePaginationMeta(params, total),
	}, nil
}

// populateLanguages resolves language references into minimal descriptors for
// entities that carry one. Entities without a language reference are left as-is.
func (r *Repository[E, PE]) populateLanguages(ctx context.Context, items []E) error {
	ids := make([]any, 0, len(items))
	seen := make(map[models.ID]struct{}, len(items))
	for i := range items {
		scoped, ok := any(PE(&items[i])).(models.LanguageScoped)
		if !ok {
			return nil
		}
		id := scoped.GetLanguageID()
		if id.IsZero() {
			continue
		}
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			ids = append(ids, string(id))
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var languages []models.Language
	err := r.db.WithContext(ctx).Table("languages").
		Select("id", "public_id", "name").
		Where("id IN ?", ids).
		Find(&languages).Error
	if err != nil {
		return fmt.Errorf("failed to resolve language references: %w", err)
	}

	refs := make(map[models.ID]*models.LanguageRef, len(languages))
	for i := range languages {
		lang := &languages[i]
		refs[lang.ID] = &models.LanguageRef{PublicID: lang.PublicID, Name: lang.Name}
	}
	for i := range items {
		scoped := any(PE(&items[i])).(models.LanguageScoped)
		if ref, ok := refs[scoped.GetLanguageID()]; ok {
			scoped.SetLanguage(ref)
		}
	}
	return nil
}
