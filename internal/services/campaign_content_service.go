package services

import (
	"context"

	"gofund/internal/models"
	"gofund/internal/repositories"
	"gofund/internal/utils"
	"gofund/pkg/logger"
)

// CampaignContentService manages the campaign sub-resources (FAQs, lead
// investors, extras). Reads go through a TTL cache keyed by collection and
// campaign; every write invalidates the campaign's tag.
type CampaignContentService struct {
	faqs      repositories.Repository[models.CampaignFAQ]
	investors repositories.Repository[models.LeadInvestor]
	extras    repositories.Repository[models.CampaignExtra]
	cache     CacheService
	logger    *logger.Logger
}

func NewCampaignContentService(
	faqs repositories.Repository[models.CampaignFAQ],
	investors repositories.Repository[models.LeadInvestor],
	extras repositories.Repository[models.CampaignExtra],
	cache CacheService,
	log *logger.Logger,
) *CampaignContentService {
	return &CampaignContentService{
		faqs:      faqs,
		investors: investors,
		extras:    extras,
		cache:     cache,
		logger:    log,
	}
}

func campaignTag(campaignID models.PublicID) string {
	return "campaign:" + string(campaignID)
}

func campaignFilter(campaignID models.PublicID) repositories.Filter {
	return repositories.Filter{"campaign_id": campaignID, "is_active": true}
}

var sortedByOrder = &repositories.QueryOptions{Sort: map[string]int{"sort_order": 1}}

func (s *CampaignContentService) ListFAQs(ctx context.Context, campaignID models.PublicID) ([]models.CampaignFAQ, error) {
	return cachedLoad(ctx, s.cache, s.logger,
		"campaign_faqs:"+string(campaignID), campaignTag(campaignID), utils.CampaignCacheTTL,
		func(ctx context.Context) ([]models.CampaignFAQ, error) {
			return s.faqs.GetAll(ctx, campaignFilter(campaignID), sortedByOrder)
		})
}

func (s *CampaignContentService) AddFAQ(ctx context.Context, faq *models.CampaignFAQ) (*models.CampaignFAQ, error) {
	faq.IsActive = true
	created, err := s.faqs.Insert(ctx, faq)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, faq.CampaignID)
	return created, nil
}

func (s *CampaignContentService) UpdateFAQ(ctx context.Context, publicID string, update repositories.Update) (*models.CampaignFAQ, error) {
	faq, err := getByPublicID(ctx, s.faqs, publicID)
	if err != nil {
		return nil, err
	}
	updated, err := s.faqs.UpdateByID(ctx, faq.ID, update)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, faq.CampaignID)
	return updated, nil
}

func (s *CampaignContentService) DeleteFAQ(ctx context.Context, publicID string) error {
	faq, err := getByPublicID(ctx, s.faqs, publicID)
	if err != nil {
		return err
	}
	deleted, err := s.faqs.DeleteByID(ctx, faq.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return repositories.ErrNotFound
	}
	s.invalidate(ctx, faq.CampaignID)
	return nil
}

func (s *CampaignContentService) ListLeadInvestors(ctx context.Context, campaignID models.PublicID) ([]models.LeadInvestor, error) {
	return cachedLoad(ctx, s.cache, s.logger,
		"lead_investors:"+string(campaignID), campaignTag(campaignID), utils.CampaignCacheTTL,
		func(ctx context.Context) ([]models.LeadInvestor, error) {
			return s.investors.GetAll(ctx, campaignFilter(campaignID), nil)
		})
}

func (s *CampaignContentService) AddLeadInvestor(ctx context.Context, investor *models.LeadInvestor) (*models.LeadInvestor, error) {
	investor.IsActive = true
	created, err := s.investors.Insert(ctx, investor)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, investor.CampaignID)
	return created, nil
}

func (s *CampaignContentService) UpdateLeadInvestor(ctx context.Context, publicID string, update repositories.Update) (*models.LeadInvestor, error) {
	investor, err := getByPublicID(ctx, s.investors, publicID)
	if err != nil {
		return nil, err
	}
	updated, err := s.investors.UpdateByID(ctx, investor.ID, update)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, investor.CampaignID)
	return updated, nil
}

func (s *CampaignContentService) DeleteLeadInvestor(ctx context.Context, publicID string) error {
	investor, err := getByPublicID(ctx, s.investors, publicID)
	if err != nil {
		return err
	}
	deleted, err := s.investors.DeleteByID(ctx, investor.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return repositories.ErrNotFound
	}
	s.invalidate(ctx, investor.CampaignID)
	return nil
}

func (s *CampaignContentService) ListExtras(ctx context.Context, campaignID models.PublicID) ([]models.CampaignExtra, error) {
	return cachedLoad(ctx, s.cache, s.logger,
		"campaign_extras:"+string(campaignID), campaignTag(campaignID), utils.CampaignCacheTTL,
		func(ctx context.Context) ([]models.CampaignExtra, error) {
			return s.extras.GetAll(ctx, campaignFilter(campaignID), sortedByOrder)
		})
}

func (s *CampaignContentService) AddExtra(ctx context.Context, extra *models.CampaignExtra) (*models.CampaignExtra, error) {
	extra.IsActive = true
	created, err := s.extras.Insert(ctx, extra)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, extra.CampaignID)
	return created, nil
}

func (s *CampaignContentService) UpdateExtra(ctx context.Context, publicID string, update repositories.Update) (*models.CampaignExtra, error) {
	extra, err := getByPublicID(ctx, s.extras, publicID)
	if err != nil {
		return nil, err
	}
	updated, err := s.extras.UpdateByID(ctx, extra.ID, update)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, extra.CampaignID)
	return updated, nil
}

func (s *CampaignContentService) DeleteExtra(ctx context.Context, publicID string) error {
	extra, err := getByPublicID(ctx, s.extras, publicID)
	if err != nil {
		return err
	}
	deleted, err := s.extras.DeleteByID(ctx, extra.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return repositories.ErrNotFound
	}
	s.invalidate(ctx, extra.CampaignID)
	return nil
}

func (s *CampaignContentService) invalidate(ctx context.Context, campaignID models.PublicID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateTag(ctx, campaignTag(campaignID)); err != nil {
		s.logger.WithError(err).Warnf("failed to invalidate cache for campaign %s", campaignID)
	}
}

// getByPublicID is the shared public-identifier lookup used by the mutation
// paths; absence is ErrNotFound here because a mutation was requested.
func getByPublicID[T any](ctx context.Context, repo repositories.Repository[T], publicID string) (*T, error) {
	entity, err := repo.GetDetail(ctx, repositories.Filter{"public_id": models.PublicID(publicID)}, nil)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, repositories.ErrNotFound
	}
	return entity, nil
}
