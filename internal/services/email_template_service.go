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

// EmailTemplateService manages one template per (task, language) pair.
// Creation fans a template out to every active language; rendering callers
// fall back to the default language when a translation is missing.
type EmailTemplateService struct {
	repo      repositories.Repository[models.EmailTemplate]
	fanout    *FanOut[models.EmailTemplate]
	languages *LanguageService
	logger    *logger.Logger
}

type CreateEmailTemplateInput struct {
	Task      string `json:"task"`
	Subject   string `json:"subject"`
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Content   string `json:"content"`
}

func NewEmailTemplateService(repo repositories.Repository[models.EmailTemplate], languages *LanguageService, log *logger.Logger) *EmailTemplateService {
	return &EmailTemplateService{
		repo:      repo,
		fanout:    NewFanOut(repo, languages),
		languages: languages,
		logger:    log,
	}
}

// Create inserts the template for every active language that does not already
// have one for the task. All languages covered already is a conflict.
func (s *EmailTemplateService) Create(ctx context.Context, input *CreateEmailTemplateInput) ([]models.EmailTemplate, error) {
	created, err := s.fanout.CreateForAllActiveLanguages(ctx,
		func(langID models.ID) repositories.Filter {
			return repositories.Filter{"task": input.Task, "language_id": langID}
		},
		func(langID models.ID) *models.EmailTemplate {
			return &models.EmailTemplate{
				LanguageID: langID,
				Task:       input.Task,
				Subject:    input.Subject,
				FromName:   input.FromName,
				FromEmail:  input.FromEmail,
				Content:    input.Content,
				IsActive:   true,
			}
		})
	if err != nil {
		return nil, err
	}

	s.logger.WithEntity("email_template").Infof("created %d language variants for task %s", len(created), input.Task)
	return created, nil
}

// GetByTask resolves the template for a task in the requested language,
// falling back to the default language's variant when the requested one does
// not exist or is inactive.
func (s *EmailTemplateService) GetByTask(ctx context.Context, task, languageIdentifier string) (*models.EmailTemplate, error) {
	langID, err := s.languages.Resolve(ctx, languageIdentifier)
	if err != nil {
		return nil, err
	}

	template, err := s.repo.GetDetail(ctx, repositories.Filter{"task": task, "language_id": langID, "is_active": true}, nil)
	if err != nil {
		return nil, err
	}
	if template != nil {
		return template, nil
	}

	defaultID, err := s.languages.DefaultLanguageID(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNoDefaultLanguage) {
			return nil, fmt.Errorf("%w: template %q", repositories.ErrNotFound, task)
		}
		return nil, err
	}
	if defaultID != langID {
		template, err = s.repo.GetDetail(ctx, repositories.Filter{"task": task, "language_id": defaultID, "is_active": true}, nil)
		if err != nil {
			return nil, err
		}
	}
	if template == nil {
		return nil, fmt.Errorf("%w: template %q", repositories.ErrNotFound, task)
	}
	return template, nil
}

// List pages through templates, optionally restricted to one language, with
// language descriptors populated.
func (s *EmailTemplateService) List(ctx context.Context, languageIdentifier string, params *utils.PaginationParams) (*repositories.PaginatedResult[models.EmailTemplate], error) {
	var filter repositories.Filter
	if languageIdentifier != "" {
		langID, err := s.languages.Resolve(ctx, languageIdentifier)
		if err != nil {
			return nil, err
		}
		filter = repositories.Filter{"language_id": langID}
	}
	return s.repo.FindWithPagination(ctx, filter, params)
}

func (s *EmailTemplateService) Update(ctx context.Context, publicID string, update repositories.Update) (*models.EmailTemplate, error) {
	template, err := s.get(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateByID(ctx, template.ID, update)
}

func (s *EmailTemplateService) Delete(ctx context.Context, publicID string) error {
	template, err := s.get(ctx, publicID)
	if err != nil {
		return err
	}
	deleted, err := s.repo.DeleteByID(ctx, template.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return repositories.ErrNotFound
	}
	return nil
}

func (s *EmailTemplateService) get(ctx context.Context, publicID string) (*models.EmailTemplate, error) {
	template, err := s.repo.GetDetail(ctx, repositories.Filter{"public_id": models.PublicID(publicID)}, nil)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, repositories.ErrNotFound
	}
	return template, nil
}
