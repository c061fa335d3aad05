package services

import (
	"context"
	"testing"

	"gofund/internal/models"
	"gofund/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentService(t *testing.T) (*CampaignContentService,
	*fakeRepo[models.CampaignFAQ, *models.CampaignFAQ],
	*fakeRepo[models.LeadInvestor, *models.LeadInvestor],
	*fakeRepo[models.CampaignExtra, *models.CampaignExtra]) {
	t.Helper()
	faqs := newFakeRepo[models.CampaignFAQ]()
	investors := newFakeRepo[models.LeadInvestor]()
	extras := newFakeRepo[models.CampaignExtra]()
	cacheService, _ := newTestCache(t)
	svc := NewCampaignContentService(faqs, investors, extras, cacheService, newTestLogger(t))
	return svc, faqs, investors, extras
}

func TestCampaignContentListFAQsSortedAndScoped(t *testing.T) {
	svc, faqs, _, _ := newContentService(t)
	campaign := models.PublicID("campaign-a")
	faqs.seed(
		&models.CampaignFAQ{CampaignID: campaign, Question: "second", SortOrder: 2, IsActive: true},
		&models.CampaignFAQ{CampaignID: campaign, Question: "first", SortOrder: 1, IsActive: true},
		&models.CampaignFAQ{CampaignID: campaign, Question: "hidden", SortOrder: 3, IsActive: false},
		&models.CampaignFAQ{CampaignID: "campaign-b", Question: "other", SortOrder: 1, IsActive: true},
	)

	list, err := svc.ListFAQs(context.Background(), campaign)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Question)
	assert.Equal(t, "second", list[1].Question)
}

func TestCampaignContentAddFAQInvalidatesCachedList(t *testing.T) {
	svc, faqs, _, _ := newContentService(t)
	campaign := models.PublicID("campaign-a")
	faqs.seed(&models.CampaignFAQ{CampaignID: campaign, Question: "first", SortOrder: 1, IsActive: true})

	// Prime the cache.
	list, err := svc.ListFAQs(context.Background(), campaign)
	require.NoError(t, err)
	require.Len(t, list, 1)

	created, err := svc.AddFAQ(context.Background(), &models.CampaignFAQ{CampaignID: campaign, Question: "second", SortOrder: 2})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	list, err = svc.ListFAQs(context.Background(), campaign)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCampaignContentUpdateFAQUnknownReturnsNotFound(t *testing.T) {
	svc, _, _, _ := newContentService(t)

	_, err := svc.UpdateFAQ(context.Background(), "missing", repositories.Update{"answer": "x"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCampaignContentDeleteFAQRemovesRecord(t *testing.T) {
	svc, faqs, _, _ := newContentService(t)
	campaign := models.PublicID("campaign-a")
	faq := &models.CampaignFAQ{CampaignID: campaign, Question: "q", IsActive: true}
	faqs.seed(faq)

	require.NoError(t, svc.DeleteFAQ(context.Background(), string(faq.PublicID)))

	list, err := svc.ListFAQs(context.Background(), campaign)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCampaignContentLeadInvestorLifecycle(t *testing.T) {
	svc, _, investors, _ := newContentService(t)
	campaign := models.PublicID("campaign-a")

	created, err := svc.AddLeadInvestor(context.Background(), &models.LeadInvestor{
		CampaignID: campaign, Name: "Jordan Lee", Title: "Partner", Amount: 50000,
	})
	require.NoError(t, err)
	require.False(t, created.PublicID.IsZero())

	updated, err := svc.UpdateLeadInvestor(context.Background(), string(created.PublicID), repositories.Update{"amount": float64(75000)})
	require.NoError(t, err)
	assert.Equal(t, float64(75000), updated.Amount)

	require.NoError(t, svc.DeleteLeadInvestor(context.Background(), string(created.PublicID)))
	n, err := investors.Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestCampaignContentExtrasScopedToCampaign(t *testing.T) {
	svc, _, _, extras := newContentService(t)
	extras.seed(
		&models.CampaignExtra{CampaignID: "campaign-a", Title: "Press", SortOrder: 1, IsActive: true},
		&models.CampaignExtra{CampaignID: "campaign-b", Title: "Perks", SortOrder: 1, IsActive: true},
	)

	list, err := svc.ListExtras(context.Background(), "campaign-a")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Press", list[0].Title)
}
