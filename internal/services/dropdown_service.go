package services

import (
	"context"
	"fmt"

	"gofund/internal/models"
	"gofund/internal/repositories"
	"gofund/internal/utils"
	"gofund/pkg/logger"
)

const dropdownCacheTag = "dropdowns"

// DropdownService manages the taxonomy options shown in admin dropdowns.
// One logical option has one variant per selected language; the variants
// share a numeric unique code.
type DropdownService struct {
	repo      repositories.Repository[models.ManageDropdown]
	fanout    *FanOut[models.ManageDropdown]
	languages *LanguageService
	cache     CacheService
	logger    *logger.Logger
}

// CreateDropdownInput is one logical option plus the languages it should
// exist in.
type CreateDropdownInput struct {
	Type      string   `json:"type"`
	Name      string   `json:"name"`
	Languages []string `json:"languages"`
}

func NewDropdownService(repo repositories.Repository[models.ManageDropdown], languages *LanguageService, cache CacheService, log *logger.Logger) *DropdownService {
	return &DropdownService{
		repo:      repo,
		fanout:    NewFanOut(repo, languages),
		languages: languages,
		cache:     cache,
		logger:    log,
	}
}

// Create inserts one variant per selected language under a fresh unique code.
// Duplicate detection is a name check up front; the fan-out itself does not
// re-check per language.
func (s *DropdownService) Create(ctx context.Context, input *CreateDropdownInput) ([]models.ManageDropdown, error) {
	exists, err := s.repo.Exists(ctx, repositories.Filter{"type": input.Type, "name": input.Name})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s option %q", repositories.ErrConflict, input.Type, input.Name)
	}

	code, err := s.nextUniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	created, err := s.fanout.CreateForLanguages(ctx, input.Languages, func(langID models.ID) *models.ManageDropdown {
		return &models.ManageDropdown{
			LanguageID: langID,
			Type:       input.Type,
			Name:       input.Name,
			UniqueCode: code,
			IsActive:   true,
		}
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

// ListByType returns one page of options of the given type in one language,
// with the language descriptor populated.
func (s *DropdownService) ListByType(ctx context.Context, dropdownType, languageIdentifier string, params *utils.PaginationParams) (*repositories.PaginatedResult[models.ManageDropdown], error) {
	langID, err := s.languages.Resolve(ctx, languageIdentifier)
	if err != nil {
		return nil, err
	}
	filter := repositories.Filter{"type": dropdownType, "language_id": langID}
	return s.repo.FindWithPagination(ctx, filter, params)
}

// Variants returns every language variant sharing the option's unique code.
func (s *DropdownService) Variants(ctx context.Context, publicID string) ([]models.ManageDropdown, error) {
	option, err := s.get(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx,
		repositories.Filter{"unique_code": option.UniqueCode},
		&repositories.QueryOptions{Populate: []string{"language"}})
}

func (s *DropdownService) Update(ctx context.Context, publicID string, update repositories.Update) (*models.ManageDropdown, error) {
	option, err := s.get(ctx, publicID)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateByID(ctx, option.ID, update)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// Delete soft-deletes the whole option: every language variant sharing the
// unique code is deactivated together. Options still referenced by campaigns
// are protected.
func (s *DropdownService) Delete(ctx context.Context, publicID string) error {
	option, err := s.get(ctx, publicID)
	if err != nil {
		return err
	}

	variants, err := s.repo.GetAll(ctx, repositories.Filter{"unique_code": option.UniqueCode}, nil)
	if err != nil {
		return err
	}
	for _, variant := range variants {
		if variant.UseCount > 0 {
			return fmt.Errorf("%w: option %q is used by %d campaigns", repositories.ErrGuardViolation, option.Name, variant.UseCount)
		}
	}

	if _, _, err := s.repo.UpdateMany(ctx,
		repositories.Filter{"unique_code": option.UniqueCode},
		repositories.Update{"is_active": false}); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *DropdownService) get(ctx context.Context, publicID string) (*models.ManageDropdown, error) {
	option, err := s.repo.GetDetail(ctx, repositories.Filter{"public_id": models.PublicID(publicID)}, nil)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, repositories.ErrNotFound
	}
	return option, nil
}

// nextUniqueCode allocates the next shared code. Concurrent creates can race
// here; the window is the same as the underlying two-read sequence.
func (s *DropdownService) nextUniqueCode(ctx context.Context) (int64, error) {
	latest, err := s.repo.GetDetail(ctx, nil, &repositories.QueryOptions{
		Sort: map[string]int{"unique_code": -1},
	})
	if err != nil {
		return 0, err
	}
	if latest == nil {
		return 1, nil
	}
	return latest.UniqueCode + 1, nil
}

func (s *DropdownService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateTag(ctx, dropdownCacheTag); err != nil {
		s.logger.WithError(err).Warn("failed to invalidate dropdown cache")
	}
}
