package mongodb

import (
	"fmt"

	"gofund/internal/models"
	"gofund/internal/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document shapes diverge from entity shapes: documents carry ObjectID
// identifiers and may hold a populated language sub-document where the entity
// holds an opaque internal key plus a minimal descriptor. Each entity gets a
// ToEntity/ToDocument pair bridging the two.

type baseDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PublicID  string             `bson:"public_id"`
	CreatedAt primitive.DateTime `bson:"created_at"`
	UpdatedAt primitive.DateTime `bson:"updated_at"`
}

func (d baseDoc) toBase() models.Base {
	return models.Base{
		ID:        models.ID(d.ID.Hex()),
		PublicID:  models.PublicID(d.PublicID),
		CreatedAt: d.CreatedAt.Time(),
		UpdatedAt: d.UpdatedAt.Time(),
	}
}

func baseFrom(b models.Base) (baseDoc, error) {
	oid, err := primitive.ObjectIDFromHex(string(b.ID))
	if err != nil {
		return baseDoc{}, fmt.Errorf("invalid internal key %q: %w", b.ID, err)
	}
	return baseDoc{
		ID:        oid,
		PublicID:  string(b.PublicID),
		CreatedAt: primitive.NewDateTimeFromTime(b.CreatedAt),
		UpdatedAt: primitive.NewDateTimeFromTime(b.UpdatedAt),
	}, nil
}

// languageRefValue decodes a language reference that may arrive either as a
// raw ObjectID or as a populated sub-document. For the populated form only
// the public identifier and name cross into the entity; the foreign
// collection's internal key is not leaked beyond the reference itself.
func languageRefValue(v any) (models.ID, *models.LanguageRef) {
	switch t := v.(type) {
	case primitive.ObjectID:
		return models.ID(t.Hex()), nil
	case bson.M:
		return refFromMap(t)
	case bson.D:
		return refFromMap(t.Map())
	default:
		return "", nil
	}
}

func refFromMap(m bson.M) (models.ID, *models.LanguageRef) {
	var id models.ID
	if oid, ok := m["_id"].(primitive.ObjectID); ok {
		id = models.ID(oid.Hex())
	}
	publicID, _ := m["public_id"].(string)
	if publicID == "" {
		return id, nil
	}
	name, _ := m["name"].(string)
	return id, &models.LanguageRef{PublicID: models.PublicID(publicID), Name: name}
}

func languageIDValue(id models.ID) (any, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, fmt.Errorf("invalid language reference %q: %w", id, err)
	}
	return oid, nil
}

type languageDoc struct {
	baseDoc   `bson:",inline"`
	Name      string `bson:"name"`
	Folder    string `bson:"folder"`
	Direction string `bson:"direction"`
	IsActive  bool   `bson:"is_active"`
	IsDefault bool   `bson:"is_default"`
}

// LanguageMapping bridges Language entities and their documents.
func LanguageMapping() Mapping[models.Language, languageDoc] {
	return Mapping[models.Language, languageDoc]{
		Collection:    "languages",
		SearchFields:  []string{"name", "folder"},
		ConvertFilter: repositories.TextContains("name"),
		ToEntity: func(d languageDoc) (models.Language, error) {
			return models.Language{
				Base:      d.toBase(),
				Name:      d.Name,
				Folder:    d.Folder,
				Direction: d.Direction,
				IsActive:  d.IsActive,
				IsDefault: d.IsDefault,
			}, nil
		},
		ToDocument: func(e *models.Language) (languageDoc, error) {
			base, err := baseFrom(e.Base)
			if err != nil {
				return languageDoc{}, err
			}
			return languageDoc{
				baseDoc:   base,
				Name:      e.Name,
				Folder:    e.Folder,
				Direction: e.Direction,
				IsActive:  e.IsActive,
				IsDefault: e.IsDefault,
			}, nil
		},
	}
}

type currencyDoc struct {
	baseDoc   `bson:",inline"`
	Name      string  `bson:"name"`
	Code      string  `bson:"code"`
	Symbol    string  `bson:"symbol"`
	Rate      float64 `bson:"rate"`
	UseCount  int64   `bson:"use_count"`
	IsActive  bool    `bson:"is_active"`
	IsDefault bool    `bson:"is_default"`
}

func CurrencyMapping() Mapping[models.Currency, currencyDoc] {
	return Mapping[models.Currency, currencyDoc]{
		Collection:    "currencies",
		SearchFields:  []string{"name", "code"},
		ConvertFilter: repositories.TextContains("name"),
		ToEntity: func(d currencyDoc) (models.Currency, error) {
			return models.Currency{
				Base:      d.toBase(),
				Name:      d.Name,
				Code:      d.Code,
				Symbol:    d.Symbol,
				Rate:      d.Rate,
				UseCount:  d.UseCount,
				IsActive:  d.IsActive,
				IsDefault: d.IsDefault,
			}, nil
		},
		ToDocument: func(e *models.Currency) (currencyDoc, error) {
			base, err := baseFrom(e.Base)
			if err != nil {
				return currencyDoc{}, err
			}
			return currencyDoc{
				baseDoc:   base,
				Name:      e.Name,
				Code:      e.Code,
				Symbol:    e.Symbol,
				Rate:      e.Rate,
				UseCount:  e.UseCount,
				IsActive:  e.IsActive,
				IsDefault: e.IsDefault,
			}, nil
		},
	}
}

type dropdownDoc struct {
	baseDoc    `bson:",inline"`
	Language   any    `bson:"language_id"`
	Type       string `bson:"type"`
	Name       string `bson:"name"`
	UniqueCode int64  `bson:"unique_code"`
	UseCount   int64  `bson:"use_count"`
	IsActive   bool   `bson:"is_active"`
}

func DropdownMapping() Mapping[models.ManageDropdown, dropdownDoc] {
	return Mapping[models.ManageDropdown, dropdownDoc]{
		Collection:   "manage_dropdowns",
		SearchFields: []string{"name", "type"},
		ToEntity: func(d dropdownDoc) (models.ManageDropdown, error) {
			langID, ref := languageRefValue(d.Language)
			return models.ManageDropdown{
				Base:       d.toBase(),
				LanguageID: langID,
				Language:   ref,
				Type:       d.Type,
				Name:       d.Name,
				UniqueCode: d.UniqueCode,
				UseCount:   d.UseCount,
				IsActive:   d.IsActive,
			}, nil
		},
		ToDocument: func(e *models.ManageDropdown) (dropdownDoc, error) {
			base, err := baseFrom(e.Base)
			if err != nil {
				return dropdownDoc{}, err
			}
			langID, err := languageIDValue(e.LanguageID)
			if err != nil {
				return dropdownDoc{}, err
			}
			return dropdownDoc{
				baseDoc:    base,
				Language:   langID,
				Type:       e.Type,
				Name:       e.Name,
				UniqueCode: e.UniqueCode,
				UseCount:   e.UseCount,
				IsActive:   e.IsActive,
			}, nil
		},
	}
}

type emailTemplateDoc struct {
	baseDoc   `bson:",inline"`
	Language  any    `bson:"language_id"`
	Task      string `bson:"task"`
	Subject   string `bson:"subject"`
	FromName  string `bson:"from_name"`
	FromEmail string `bson:"from_email"`
	Content   string `bson:"content"`
	IsActive  bool   `bson:"is_active"`
}

func EmailTemplateMapping() Mapping[models.EmailTemplate, emailTemplateDoc] {
	return Mapping[models.EmailTemplate, emailTemplateDoc]{
		Collection:   "email_templates",
		SearchFields: []string{"task", "subject"},
		ToEntity: func(d emailTemplateDoc) (models.EmailTemplate, error) {
			langID, ref := languageRefValue(d.Language)
			return models.EmailTemplate{
				Base:       d.toBase(),
				LanguageID: langID,
				Language:   ref,
				Task:       d.Task,
				Subject:    d.Subject,
				FromName:   d.FromName,
				FromEmail:  d.FromEmail,
				Content:    d.Content,
				IsActive:   d.IsActive,
			}, nil
		},
		ToDocument: func(e *models.EmailTemplate) (emailTemplateDoc, error) {
			base, err := baseFrom(e.Base)
			if err != nil {
				return emailTemplateDoc{}, err
			}
			langID, err := languageIDValue(e.LanguageID)
			if err != nil {
				return emailTemplateDoc{}, err
			}
			return emailTemplateDoc{
				baseDoc:   base,
				Language:  langID,
				Task:      e.Task,
				Subject:   e.Subject,
				FromName:  e.FromName,
				FromEmail: e.FromEmail,
				Content:   e.Content,
				IsActive:  e.IsActive,
			}, nil
		},
	}
}

type metaSettingDoc struct {
	baseDoc     `bson:",inline"`
	Language    any    `bson:"language_id"`
	Title       string `bson:"title"`
	Keywords    string `bson:"keywords"`
	Description string `bson:"description"`
	OgImageURL  string `bson:"og_image_url"`
	IsActive    bool   `bson:"is_active"`
}

func MetaSettingMapping() Mapping[models.MetaSetting, metaSettingDoc] {
	return Mapping[models.MetaSetting, metaSettingDoc]{
		Collection:   "meta_settings",
		SearchFields: []string{"title", "keywords"},
		ToEntity: func(d metaSettingDoc) (models.MetaSetting, error) {
			langID, ref := languageRefValue(d.Language)
			return models.MetaSetting{
				Base:        d.toBase(),
				LanguageID:  langID,
				Language:    ref,
				Title:       d.Title,
				Keywords:    d.Keywords,
				Description: d.Description,
				OgImageURL:  d.OgImageURL,
				IsActive:    d.IsActive,
			}, nil
		},
		ToDocument: func(e *models.MetaSetting) (metaSettingDoc, error) {
			base, err := baseFrom(e.Base)
			if err != nil {
				return metaSettingDoc{}, err
			}
			langID, err := languageIDValue(e.LanguageID)
			if err != nil {
				return metaSettingDoc{}, err
			}
			return metaSettingDoc{
				baseDoc:     base,
				Language:    langID,
				Title:       e.Title,
				Keywords:    e.Keywords,
				Description: e.Description,
				OgImageURL:  e.OgImageURL,
				IsActive:    e.IsActive,
			}, nil
		},
	}
}

type campaignFAQDoc struct {
	baseDoc    `bson:",inline"`
	CampaignID string `bson:"campaign_id"`
	Question   string `bson:"question"`
	Answer     string `bson:"answer"`
	SortOrder  int    `bson:"sort_order"`
	IsActive   bool   `bson:"is_active"`
}

func CampaignFAQMapping() Mapping[models.CampaignFAQ, campaignFAQDoc] {
	return Mapping[models.CampaignFAQ, campaignFAQDoc]{
		Collection:   "campaign_faqs",
		SearchFields: []string{"question"},
		ToEntity: func(d campaignFAQDoc) (models.CampaignFAQ, error) {
			return models.CampaignFAQ{
				Base:       d.toBase(),
				CampaignID: models.PublicID(d.CampaignID),
				Question:   d.Question,
				Answer:     d.Answer,
				SortOrder:  d.SortOrder,
				IsActive:   d.IsActive,
			}, nil
		},
		ToDocument: func(e *models.CampaignFAQ) (campaignFAQDoc, error) {
			base, err := baseFrom(e.Base)
			if err != nil {
				return campaignFAQDoc{}, err
			}
			return campaignFAQDoc{
				baseDoc:    base,
				CampaignID: string(e.CampaignID),
				Question:   e.Question,
				Answer:     e.Answer,
				SortOrder:  e.SortOrder,
				IsActive:   e.IsActive,
			}, nil
		},
	}
}

type leadInvestorDoc struct {
	baseDoc    `bson:",inline"`
	CampaignID string  `bson:"campaign_id"`
	Name       string  `bson:"name"`
	Title      string  `bson:"title"`
	PhotoURL   string  `bson:"photo_url"`
	Bio        string  `bson:"bio"`
	Amount     float64 `bson:"amount"`
	IsActive   bool    `bson:"is_active"`
}

func LeadInvestorMapping() Mapping[models.LeadInvestor, leadInvestorDoc] {
	return Mapping[models.LeadInvestor, leadInvestorDoc]{
		Collection:   "lead_investors",
		SearchFields: []string{"name"},
		ToEntity: func(d leadInvestorDoc) (models.LeadInvestor, error) {
			return models.LeadInvestor{
				Base:       d.toBase(),
				CampaignID: models.PublicID(d.CampaignID),
				Name:       d.Name,
				Title:      d.Title,
				PhotoURL:   d.PhotoURL,
				Bio:        d.Bio,
				Amount:     d.Amount,
				IsActive:   d.IsActive,
			}, nil
		},
		ToDocument: func(e *models.LeadInvestor) (leadInvestorDoc, error) {
			base, err := baseFrom(e.Base)
			if err != nil {
				return leadInvestorDoc{}, err
			}
			return leadInvestorDoc{
				baseDoc:    base,
				CampaignID: string(e.CampaignID),
				Name:       e.Name,
				Title:      e.Title,
				PhotoURL:   e.PhotoURL,
				Bio:        e.Bio,
				Amount:     e.Amount,
				IsActive:   e.IsActive,
			}, nil
		},
	}
}

type campaignExtraDoc struct {
	baseDoc    `bson:",inline"`
	CampaignID string `bson:"campaign_id"`
	Title      string `bson:"title"`
	Content    string `bson:"content"`
	LinkURL    string `bson:"link_url"`
	SortOrder  int    `bson:"sort_order"`
	IsActive   bool   `bson:"is_active"`
}

func CampaignExtraMapping() Mapping[models.CampaignExtra, campaignExtraDoc] {
	return Mapping[models.CampaignExtra, campaignExtraDoc]{
		Collection:   "campaign_extras",
		SearchFields: []string{"title"},
		ToEntity: func(d campaignExtraDoc) (models.CampaignExtra, error) {
			return models.CampaignExtra{
				Base:       d.toBase(),
				CampaignID: models.PublicID(d.CampaignID),
				Title:      d.Title,
				Content:    d.Content,
				LinkURL:    d.LinkURL,
				SortOrder:  d.SortOrder,
				IsActive:   d.IsActive,
			}, nil
		},
		ToDocument: func(e *models.CampaignExtra) (campaignExtraDoc, error) {
			base, err := baseFrom(e.Base)
			if err != nil {
				return campaignExtraDoc{}, err
			}
			return campaignExtraDoc{
				baseDoc:    base,
				CampaignID: string(e.CampaignID),
				Title:      e.Title,
				Content:    e.Content,
				LinkURL:    e.LinkURL,
				SortOrder:  e.SortOrder,
				IsActive:   e.IsActive,
			}, nil
		},
	}
}
