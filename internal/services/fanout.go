package services

import (
	"context"
	"fmt"

	"gofund/internal/models"
	"gofund/internal/repositories"
)

// FanOut creates language variants of one logical record for entities that
// exist once per language (dropdown options, email templates, meta settings).
type FanOut[T any] struct {
	repo      repositories.Repository[T]
	languages *LanguageService
}

func NewFanOut[T any](repo repositories.Repository[T], languages *LanguageService) *FanOut[T] {
	return &FanOut[T]{repo: repo, languages: languages}
}

// CreateForAllActiveLanguages inserts one record per active language.
// Languages that already hold a record for the content key are skipped, never
// overwritten. The returned slice is what was actually created; when every
// language already had a record the operation is a conflict, not a silent
// no-op.
func (f *FanOut[T]) CreateForAllActiveLanguages(
	ctx context.Context,
	existsFilter func(langID models.ID) repositories.Filter,
	build func(langID models.ID) *T,
) ([]T, error) {
	langIDs, err := f.languages.ActiveLanguageIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(langIDs) == 0 {
		return nil, fmt.Errorf("%w: no active languages", repositories.ErrInvalidReference)
	}

	var created []T
	for _, langID := range langIDs {
		exists, err := f.repo.Exists(ctx, existsFilter(langID))
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		inserted, err := f.repo.Insert(ctx, build(langID))
		if err != nil {
			return nil, err
		}
		created = append(created, *inserted)
	}

	if len(created) == 0 {
		return nil, fmt.Errorf("%w: record exists for every active language", repositories.ErrConflict)
	}
	return created, nil
}

// CreateForLanguages inserts one record per explicitly selected language.
// Identifiers are resolved (and must be active) before any insert happens.
// There is no pre-existence check here; duplicate detection is the caller's
// responsibility.
func (f *FanOut[T]) CreateForLanguages(
	ctx context.Context,
	identifiers []string,
	build func(langID models.ID) *T,
) ([]T, error) {
	if len(identifiers) == 0 {
		return nil, fmt.Errorf("%w: no languages selected", repositories.ErrInvalidReference)
	}

	langIDs := make([]models.ID, 0, len(identifiers))
	for _, identifier := range identifiers {
		id, err := f.languages.Resolve(ctx, identifier)
		if err != nil {
			return nil, err
		}
		langIDs = append(langIDs, id)
	}

	created := make([]T, 0, len(langIDs))
	for _, langID := range langIDs {
		inserted, err := f.repo.Insert(ctx, build(langID))
		if err != nil {
			return nil, err
		}
		created = append(created, *inserted)
	}
	return created, nil
}
