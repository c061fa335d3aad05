package services

import (
	"context"
	"fmt"

	"gofund/internal/models"
	"gofund/internal/repositories"
	"gofund/internal/utils"
	"gofund/pkg/logger"
)

const currencyCacheTag = "currencies"

type CurrencyService struct {
	repo   repositories.Repository[models.Currency]
	cache  CacheService
	logger *logger.Logger
}

func NewCurrencyService(repo repositories.Repository[models.Currency], cache CacheService, log *logger.Logger) *CurrencyService {
	return &CurrencyService{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (s *CurrencyService) List(ctx context.Context, params *utils.PaginationParams) (*repositories.PaginatedResult[models.Currency], error) {
	return s.repo.FindWithPagination(ctx, nil, params)
}

func (s *CurrencyService) Get(ctx context.Context, publicID string) (*models.Currency, error) {
	currency, err := s.repo.GetDetail(ctx, repositories.Filter{"public_id": models.PublicID(publicID)}, nil)
	if err != nil {
		return nil, err
	}
	if currency == nil {
		return nil, repositories.ErrNotFound
	}
	return currency, nil
}

func (s *CurrencyService) Create(ctx context.Context, currency *models.Currency) (*models.Currency, error) {
	exists, err := s.repo.Exists(ctx, repositories.Filter{"code": currency.Code})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: currency code %q", repositories.ErrConflict, currency.Code)
	}
	// Default promotion goes through SetDefault only.
	currency.IsDefault = false

	created, err := s.repo.Insert(ctx, currency)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *CurrencyService) Update(ctx context.Context, publicID string, update repositories.Update) (*models.Currency, error) {
	currency, err := s.Get(ctx, publicID)
	if err != nil {
		return nil, err
	}
	// The default marker is owned by SetDefault.
	delete(update, "is_default")

	updated, err := s.repo.UpdateByID(ctx, currency.ID, update)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// SetDefault promotes one currency to the deployment default, demoting the
// rest first. Same two-write sequence as the language default.
func (s *CurrencyService) SetDefault(ctx context.Context, publicID string) (*models.Currency, error) {
	currency, err := s.Get(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: cannot default inactive currency %q", repositories.ErrInvalidReference, publicID)
	}

	if _, _, err := s.repo.UpdateMany(ctx, repositories.Filter{"is_default": true}, repositories.Update{"is_default": false}); err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateByID(ctx, currency.ID, repositories.Update{"is_default": true})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// Delete removes a currency permanently. A currency still referenced by
// campaigns (use_count > 0) is protected.
func (s *CurrencyService) Delete(ctx context.Context, publicID string) error {
	currency, err := s.Get(ctx, publicID)
	if err != nil {
		return err
	}
	if currency.UseCount > 0 {
		return fmt.Errorf("%w: currency %q is used by %d campaigns", repositories.ErrGuardViolation, currency.Code, currency.UseCount)
	}

	deleted, err := s.repo.DeleteByID(ctx, currency.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return repositories.ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *CurrencyService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateTag(ctx, currencyCacheTag); err != nil {
		s.logger.WithError(err).Warn("failed to invalidate currency cache")
	}
}
