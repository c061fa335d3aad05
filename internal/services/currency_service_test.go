package services

import (
	"context"
	"testing"

	"gofund/internal/models"
	"gofund/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCurrencies(repo *fakeRepo[models.Currency, *models.Currency]) (usd, eur *models.Currency) {
	usd = &models.Currency{Name: "US Dollar", Code: "USD", Symbol: "$", Rate: 1, IsActive: true, IsDefault: true}
	eur = &models.Currency{Name: "Euro", Code: "EUR", Symbol: "€", Rate: 0.92, IsActive: true}
	repo.seed(usd, eur)
	return usd, eur
}

func TestCurrencyServiceCreateRejectsDuplicateCode(t *testing.T) {
	repo := newFakeRepo[models.Currency]()
	seedCurrencies(repo)
	svc := NewCurrencyService(repo, nil, newTestLogger(t))

	_, err := svc.Create(context.Background(), &models.Currency{Name: "Dollar", Code: "USD"})
	assert.ErrorIs(t, err, repositories.ErrConflict)
}

func TestCurrencyServiceCreateAssignsIdentifiers(t *testing.T) {
	repo := newFakeRepo[models.Currency]()
	svc := NewCurrencyService(repo, nil, newTestLogger(t))

	created, err := svc.Create(context.Background(), &models.Currency{Name: "Yen", Code: "JPY", IsActive: true})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.False(t, created.PublicID.IsZero())
}

func TestCurrencyServiceSetDefaultDemotesPrevious(t *testing.T) {
	repo := newFakeRepo[models.Currency]()
	usd, eur := seedCurrencies(repo)
	svc := NewCurrencyService(repo, nil, newTestLogger(t))

	updated, err := svc.SetDefault(context.Background(), string(eur.PublicID))
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)

	previous, err := repo.GetDetailByID(context.Background(), usd.ID)
	require.NoError(t, err)
	assert.False(t, previous.IsDefault)
}

func TestCurrencyServiceSetDefaultRejectsInactive(t *testing.T) {
	repo := newFakeRepo[models.Currency]()
	repo.seed(&models.Currency{Name: "Peso", Code: "MXN", IsActive: false})
	svc := NewCurrencyService(repo, nil, newTestLogger(t))

	inactive, err := repo.GetDetail(context.Background(), repositories.Filter{"code": "MXN"}, nil)
	require.NoError(t, err)

	_, err = svc.SetDefault(context.Background(), string(inactive.PublicID))
	assert.ErrorIs(t, err, repositories.ErrInvalidReference)
}

func TestCurrencyServiceDeleteGuardsUsedCurrency(t *testing.T) {
	repo := newFakeRepo[models.Currency]()
	used := &models.Currency{Name: "Pound", Code: "GBP", UseCount: 3, IsActive: true}
	repo.seed(used)
	svc := NewCurrencyService(repo, nil, newTestLogger(t))

	err := svc.Delete(context.Background(), string(used.PublicID))
	assert.ErrorIs(t, err, repositories.ErrGuardViolation)

	// The guarded record must still be there.
	n, err := repo.Count(context.Background(), repositories.Filter{"code": "GBP"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCurrencyServiceDeleteRemovesUnusedCurrency(t *testing.T) {
	repo := newFakeRepo[models.Currency]()
	_, eur := seedCurrencies(repo)
	svc := NewCurrencyService(repo, nil, newTestLogger(t))

	require.NoError(t, svc.Delete(context.Background(), string(eur.PublicID)))

	n, err := repo.Count(context.Background(), repositories.Filter{"code": "EUR"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestCurrencyServiceGetUnknownReturnsNotFound(t *testing.T) {
	repo := newFakeRepo[models.Currency]()
	svc := NewCurrencyService(repo, nil, newTestLogger(t))

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCurrencyServiceCreateNeverInstallsDefault(t *testing.T) {
	repo := newFakeRepo[models.Currency]()
	usd, _ := seedCurrencies(repo)
	svc := NewCurrencyService(repo, nil, newTestLogger(t))

	created, err := svc.Create(context.Background(), &models.Currency{Name: "Yen", Code: "JPY", IsActive: true, IsDefault: true})
	require.NoError(t, err)
	assert.False(t, created.IsDefault)

	count, err := repo.Count(context.Background(), repositories.Filter{"is_default": true})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	current, err := repo.GetDetail(context.Background(), repositories.Filter{"is_default": true}, nil)
	require.NoError(t, err)
	assert.Equal(t, usd.ID, current.ID)
}

func TestCurrencyServiceUpdateCannotChangeDefaultMarker(t *testing.T) {
	repo := newFakeRepo[models.Currency]()
	usd, eur := seedCurrencies(repo)
	svc := NewCurrencyService(repo, nil, newTestLogger(t))

	updated, err := svc.Update(context.Background(), string(eur.PublicID), repositories.Update{"rate": 0.95, "is_default": true})
	require.NoError(t, err)
	assert.False(t, updated.IsDefault)

	count, err := repo.Count(context.Background(), repositories.Filter{"is_default": true})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	current, err := repo.GetDetail(context.Background(), repositories.Filter{"is_default": true}, nil)
	require.NoError(t, err)
	assert.Equal(t, usd.ID, current.ID)
}
