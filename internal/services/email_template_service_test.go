package services

import (
	"context"
	"testing"

	"gofund/internal/models"
	"gofund/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func welcomeInput() *CreateEmailTemplateInput {
	return &CreateEmailTemplateInput{
		Task:      models.EmailTaskWelcome,
		Subject:   "Welcome aboard",
		FromName:  "GoFund",
		FromEmail: "noreply@gofund.test",
		Content:   "<p>Welcome</p>",
	}
}

func TestEmailTemplateServiceCreateCoversAllActiveLanguages(t *testing.T) {
	repo := newFakeRepo[models.EmailTemplate]()
	languages, en, de := newTestLanguages(t)
	svc := NewEmailTemplateService(repo, languages, newTestLogger(t))

	created, err := svc.Create(context.Background(), welcomeInput())
	require.NoError(t, err)
	require.Len(t, created, 2)

	langIDs := map[models.ID]bool{created[0].LanguageID: true, created[1].LanguageID: true}
	assert.True(t, langIDs[en.ID])
	assert.True(t, langIDs[de.ID])
}

func TestEmailTemplateServiceCreateSkipsCoveredLanguages(t *testing.T) {
	repo := newFakeRepo[models.EmailTemplate]()
	languages, en, de := newTestLanguages(t)
	repo.seed(&models.EmailTemplate{LanguageID: en.ID, Task: models.EmailTaskWelcome, Subject: "old", IsActive: true})
	svc := NewEmailTemplateService(repo, languages, newTestLogger(t))

	created, err := svc.Create(context.Background(), welcomeInput())
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, de.ID, created[0].LanguageID)

	// The existing variant is never overwritten.
	existing, err := repo.GetDetail(context.Background(), repositories.Filter{"task": models.EmailTaskWelcome, "language_id": en.ID}, nil)
	require.NoError(t, err)
	assert.Equal(t, "old", existing.Subject)
}

func TestEmailTemplateServiceCreateFullCoverageIsConflict(t *testing.T) {
	repo := newFakeRepo[models.EmailTemplate]()
	languages, en, de := newTestLanguages(t)
	repo.seed(
		&models.EmailTemplate{LanguageID: en.ID, Task: models.EmailTaskWelcome, IsActive: true},
		&models.EmailTemplate{LanguageID: de.ID, Task: models.EmailTaskWelcome, IsActive: true},
	)
	svc := NewEmailTemplateService(repo, languages, newTestLogger(t))

	_, err := svc.Create(context.Background(), welcomeInput())
	assert.ErrorIs(t, err, repositories.ErrConflict)
}

func TestEmailTemplateServiceCreateWithoutLanguagesFails(t *testing.T) {
	repo := newFakeRepo[models.EmailTemplate]()
	langRepo := newFakeRepo[models.Language]()
	languages := NewLanguageService(langRepo, nil, newTestLogger(t))
	svc := NewEmailTemplateService(repo, languages, newTestLogger(t))

	_, err := svc.Create(context.Background(), welcomeInput())
	assert.ErrorIs(t, err, repositories.ErrInvalidReference)
}

func TestEmailTemplateServiceGetByTaskFallsBackToDefaultLanguage(t *testing.T) {
	repo := newFakeRepo[models.EmailTemplate]()
	languages, en, de := newTestLanguages(t)
	repo.seed(&models.EmailTemplate{LanguageID: en.ID, Task: models.EmailTaskWelcome, Subject: "english", IsActive: true})
	svc := NewEmailTemplateService(repo, languages, newTestLogger(t))

	template, err := svc.GetByTask(context.Background(), models.EmailTaskWelcome, string(de.PublicID))
	require.NoError(t, err)
	assert.Equal(t, "english", template.Subject)
}

func TestEmailTemplateServiceGetByTaskPrefersRequestedLanguage(t *testing.T) {
	repo := newFakeRepo[models.EmailTemplate]()
	languages, en, de := newTestLanguages(t)
	repo.seed(
		&models.EmailTemplate{LanguageID: en.ID, Task: models.EmailTaskWelcome, Subject: "english", IsActive: true},
		&models.EmailTemplate{LanguageID: de.ID, Task: models.EmailTaskWelcome, Subject: "deutsch", IsActive: true},
	)
	svc := NewEmailTemplateService(repo, languages, newTestLogger(t))

	template, err := svc.GetByTask(context.Background(), models.EmailTaskWelcome, string(de.PublicID))
	require.NoError(t, err)
	assert.Equal(t, "deutsch", template.Subject)
}

func TestEmailTemplateServiceGetByTaskMissingEverywhere(t *testing.T) {
	repo := newFakeRepo[models.EmailTemplate]()
	languages, _, de := newTestLanguages(t)
	svc := NewEmailTemplateService(repo, languages, newTestLogger(t))

	_, err := svc.GetByTask(context.Background(), models.EmailTaskWelcome, string(de.PublicID))
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestEmailTemplateServiceDeleteRemovesVariant(t *testing.T) {
	repo := newFakeRepo[models.EmailTemplate]()
	languages, en, _ := newTestLanguages(t)
	tmpl := &models.EmailTemplate{LanguageID: en.ID, Task: models.EmailTaskWelcome, IsActive: true}
	repo.seed(tmpl)
	svc := NewEmailTemplateService(repo, languages, newTestLogger(t))

	require.NoError(t, svc.Delete(context.Background(), string(tmpl.PublicID)))

	n, err := repo.Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
