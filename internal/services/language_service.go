package services

import (
	"context"
	"fmt"

	"gofund/internal/models"
	"gofund/internal/repositories"
	"gofund/internal/utils"
	"gofund/pkg/logger"
)

const (
	languageCacheTag     = "languages"
	defaultLanguageIDKey = "languages:default_id"
)

// LanguageService owns language records and resolves caller-supplied language
// identifiers into internal keys for every other language-aware service.
type LanguageService struct {
	repo   repositories.Repository[models.Language]
	cache  CacheService
	logger *logger.Logger
}

func NewLanguageService(repo repositories.Repository[models.Language], cache CacheService, log *logger.Logger) *LanguageService {
	return &LanguageService{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

// Resolve turns an optional language identifier into the internal key of an
// active language. Callers may legitimately hold either the public identifier
// (public API) or the internal key (internal tooling), so both are tried, in
// that order. An empty identifier falls back to the default language.
func (s *LanguageService) Resolve(ctx context.Context, identifier string) (models.ID, error) {
	if identifier == "" {
		return s.DefaultLanguageID(ctx)
	}

	lang, err := s.repo.GetDetail(ctx, repositories.Filter{"public_id": models.PublicID(identifier)}, nil)
	if err != nil {
		return "", err
	}
	if lang != nil && lang.IsActive {
		return lang.ID, nil
	}

	if lang == nil {
		lang, err = s.repo.GetDetailByID(ctx, models.ID(identifier))
		if err != nil {
			return "", err
		}
		if lang != nil && lang.IsActive {
			return lang.ID, nil
		}
	}

	return "", fmt.Errorf("%w: language %q", repositories.ErrInvalidReference, identifier)
}

// DefaultLanguageID returns the internal key of the active default language.
// An inactive default does not count: resolution must not hand out a key the
// rest of the system would refuse.
func (s *LanguageService) DefaultLanguageID(ctx context.Context) (models.ID, error) {
	id, err := cachedLoad(ctx, s.cache, s.logger, defaultLanguageIDKey, languageCacheTag, utils.LanguageCacheTTL,
		func(ctx context.Context) (string, error) {
			lang, err := s.repo.GetDetail(ctx, repositories.Filter{"is_default": true, "is_active": true}, nil)
			if err != nil {
				return "", err
			}
			if lang == nil {
				return "", repositories.ErrNoDefaultLanguage
			}
			return string(lang.ID), nil
		})
	if err != nil {
		return "", err
	}
	return models.ID(id), nil
}

// ActiveLanguageIDs returns the internal keys of every active language.
func (s *LanguageService) ActiveLanguageIDs(ctx context.Context) ([]models.ID, error) {
	languages, err := s.repo.GetAll(ctx, repositories.Filter{"is_active": true}, nil)
	if err != nil {
		return nil, err
	}
	ids := make([]models.ID, 0, len(languages))
	for _, lang := range languages {
		ids = append(ids, lang.ID)
	}
	return ids, nil
}

// GetByCode looks a language up by its folder code.
func (s *LanguageService) GetByCode(ctx context.Context, code string) (*models.Language, error) {
	return s.repo.GetDetail(ctx, repositories.Filter{"folder": code}, nil)
}

func (s *LanguageService) Get(ctx context.Context, identifier string) (*models.Language, error) {
	lang, err := s.find(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if lang == nil {
		return nil, repositories.ErrNotFound
	}
	return lang, nil
}

func (s *LanguageService) List(ctx context.Context, params *utils.PaginationParams) (*repositories.PaginatedResult[models.Language], error) {
	return s.repo.FindWithPagination(ctx, nil, params)
}

func (s *LanguageService) Create(ctx context.Context, lang *models.Language) (*models.Language, error) {
	exists, err := s.repo.Exists(ctx, repositories.Filter{"folder": lang.Folder})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: language folder %q", repositories.ErrConflict, lang.Folder)
	}
	if lang.Direction == "" {
		lang.Direction = models.DirectionLTR
	}
	// Exactly one language carries the default marker; promotion goes
	// through SetDefault, which demotes the previous holder first.
	lang.IsDefault = false

	created, err := s.repo.Insert(ctx, lang)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *LanguageService) Update(ctx context.Context, identifier string, update repositories.Update) (*models.Language, error) {
	lang, err := s.find(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if lang == nil {
		return nil, repositories.ErrNotFound
	}
	// The default marker is owned by SetDefault.
	delete(update, "is_default")

	updated, err := s.repo.UpdateByID(ctx, lang.ID, update)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// SetDefault promotes one language to default. The demote-all write and the
// promote-one write are two separate statements; a reader between them sees
// no default language, and two racing promotions can leave zero or two.
func (s *LanguageService) SetDefault(ctx context.Context, identifier string) (*models.Language, error) {
	lang, err := s.find(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if lang == nil {
		return nil, repositories.ErrNotFound
	}
	if !lang.IsActive {
		return nil, fmt.Errorf("%w: cannot default inactive language %q", repositories.ErrInvalidReference, identifier)
	}

	if _, _, err := s.repo.UpdateMany(ctx, repositories.Filter{"is_default": true}, repositories.Update{"is_default": false}); err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateByID(ctx, lang.ID, repositories.Update{"is_default": true})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.WithEntity("language").Infof("language %s set as default", updated.PublicID)
	return updated, nil
}

// Delete soft-deletes a language. Records scoped to it stay referentially
// intact but the language stops resolving.
func (s *LanguageService) Delete(ctx context.Context, identifier string) error {
	lang, err := s.find(ctx, identifier)
	if err != nil {
		return err
	}
	if lang == nil {
		return repositories.ErrNotFound
	}

	if _, err := s.repo.UpdateByID(ctx, lang.ID, repositories.Update{"is_active": false}); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// find looks a language up by public identifier first, then by internal key,
// without any active check. Admin operations need to reach inactive records.
func (s *LanguageService) find(ctx context.Context, identifier string) (*models.Language, error) {
	lang, err := s.repo.GetDetail(ctx, repositories.Filter{"public_id": models.PublicID(identifier)}, nil)
	if err != nil || lang != nil {
		return lang, err
	}
	return s.repo.GetDetailByID(ctx, models.ID(identifier))
}

func (s *LanguageService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateTag(ctx, languageCacheTag); err != nil {
		s.logger.WithError(err).Warn("failed to invalidate language cache")
	}
}
