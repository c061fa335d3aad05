package services

import (
	"context"
	"errors"
	"fmt"

	"gofund/internal/models"
	"gofund/internal/repositories"
	"gofund/internal/utils"
	"gofund/pkg/logger"
)

// MetaSettingService manages the per-language site metadata. At most one
// record exists per language.
type MetaSettingService struct {
	repo      repositories.Repository[models.MetaSetting]
	fanout    *FanOut[models.MetaSetting]
	languages *LanguageService
	logger    *logger.Logger
}

type CreateMetaSettingInput struct {
	Title       string `json:"title"`
	Keywords    string `json:"keywords"`
	Description string `json:"description"`
	OgImageURL  string `json:"og_image_url"`
}

func NewMetaSettingService(repo repositories.Repository[models.MetaSetting], languages *LanguageService, log *logger.Logger) *MetaSettingService {
	return &MetaSettingService{
		repo:      repo,
		fanout:    NewFanOut(repo, languages),
		languages: languages,
		logger:    log,
	}
}

// Create inserts the metadata for every active language that lacks a record.
func (s *MetaSettingService) Create(ctx context.Context, input *CreateMetaSettingInput) ([]models.MetaSetting, error) {
	return s.fanout.CreateForAllActiveLanguages(ctx,
		func(langID models.ID) repositories.Filter {
			return repositories.Filter{"language_id": langID}
		},
		func(langID models.ID) *models.MetaSetting {
			return &models.MetaSetting{
				LanguageID:  langID,
				Title:       input.Title,
				Keywords:    input.Keywords,
				Description: input.Description,
				OgImageURL:  input.OgImageURL,
				IsActive:    true,
			}
		})
}

// GetByLanguage returns the metadata for the requested language, falling back
// to the default language's record when none exists.
func (s *MetaSettingService) GetByLanguage(ctx context.Context, languageIdentifier string) (*models.MetaSetting, error) {
	langID, err := s.languages.Resolve(ctx, languageIdentifier)
	if err != nil {
		return nil, err
	}

	setting, err := s.repo.GetDetail(ctx, repositories.Filter{"language_id": langID, "is_active": true}, nil)
	if err != nil {
		return nil, err
	}
	if setting != nil {
		return setting, nil
	}

	defaultID, err := s.languages.DefaultLanguageID(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNoDefaultLanguage) {
			return nil, fmt.Errorf("%w: meta settings", repositories.ErrNotFound)
		}
		return nil, err
	}
	if defaultID != langID {
		setting, err = s.repo.GetDetail(ctx, repositories.Filter{"language_id": defaultID, "is_active": true}, nil)
		if err != nil {
			return nil, err
		}
	}
	if setting == nil {
		return nil, fmt.Errorf("%w: meta settings", repositories.ErrNotFound)
	}
	return setting, nil
}

func (s *MetaSettingService) List(ctx context.Context, params *utils.PaginationParams) (*repositories.PaginatedResult[models.MetaSetting], error) {
	return s.repo.FindWithPagination(ctx, nil, params)
}

func (s *MetaSettingService) Update(ctx context.Context, publicID string, update repositories.Update) (*models.MetaSetting, error) {
	setting, err := s.repo.GetDetail(ctx, repositories.Filter{"public_id": models.PublicID(publicID)}, nil)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, repositories.ErrNotFound
	}
	return s.repo.UpdateByID(ctx, setting.ID, update)
}
