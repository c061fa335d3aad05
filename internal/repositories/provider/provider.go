// Package provider binds one concrete adapter instance per entity behind the
// generic repository contract, according to the deployment's persistence
// engine. Selection happens once here; nothing downstream branches on the
// backend again.
package provider

import (
	"fmt"

	"gofund/internal/config"
	"gofund/internal/models"
	"gofund/internal/repositories"
	"gofund/internal/repositories/gormdb"
	"gofund/internal/repositories/mongodb"
	"gofund/pkg/database"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Repositories is the explicit binding table consumed by the domain services.
// A missing binding is a programming error caught at startup, not at first use.
type Repositories struct {
	Languages      repositories.Repository[models.Language]
	Currencies     repositories.Repository[models.Currency]
	Dropdowns      repositories.Repository[models.ManageDropdown]
	EmailTemplates repositories.Repository[models.EmailTemplate]
	MetaSettings   repositories.Repository[models.MetaSetting]
	CampaignFAQs   repositories.Repository[models.CampaignFAQ]
	LeadInvestors  repositories.Repository[models.LeadInvestor]
	CampaignExtras repositories.Repository[models.CampaignExtra]
}

// Build connects to the configured engine and constructs the binding table.
// The returned closer releases the underlying connection pool.
func Build(cfg *config.Config) (*Repositories, func() error, error) {
	switch cfg.Database.Type {
	case config.DatabaseMongo:
		mongoDB, err := database.NewMongoDB(&database.MongoConfig{
			URI:            cfg.Database.URI,
			Database:       cfg.Database.Database,
			MaxPoolSize:    cfg.Database.MaxPoolSize,
			MinPoolSize:    cfg.Database.MinPoolSize,
			ConnectTimeout: cfg.Database.ConnectTimeout,
			SocketTimeout:  cfg.Database.SocketTimeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
		}
		if err := database.NewMigrator(mongoDB.Database).Up(); err != nil {
			mongoDB.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return NewMongo(mongoDB.Database), mongoDB.Close, nil

	case config.DatabaseMySQL:
		db, err := database.NewMySQL(&database.MySQLConfig{
			DSN:             cfg.Database.DSN(),
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			Debug:           cfg.App.Debug,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to mysql: %w", err)
		}
		closer := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return NewMySQL(db), closer, nil

	default:
		return nil, nil, fmt.Errorf("unsupported DATABASE_TYPE %q (want %q or %q)",
			cfg.Database.Type, config.DatabaseMongo, config.DatabaseMySQL)
	}
}

// NewMongo binds every entity to the document-store adapter.
func NewMongo(db *mongo.Database) *Repositories {
	return &Repositories{
		Languages:      mongodb.New[models.Language](db, mongodb.LanguageMapping()),
		Currencies:     mongodb.New[models.Currency](db, mongodb.CurrencyMapping()),
		Dropdowns:      mongodb.New[models.ManageDropdown](db, mongodb.DropdownMapping()),
		EmailTemplates: mongodb.New[models.EmailTemplate](db, mongodb.EmailTemplateMapping()),
		MetaSettings:   mongodb.New[models.MetaSetting](db, mongodb.MetaSettingMapping()),
		CampaignFAQs:   mongodb.New[models.CampaignFAQ](db, mongodb.CampaignFAQMapping()),
		LeadInvestors:  mongodb.New[models.LeadInvestor](db, mongodb.LeadInvestorMapping()),
		CampaignExtras: mongodb.New[models.CampaignExtra](db, mongodb.CampaignExtraMapping()),
	}
}

// NewMySQL binds every entity to the relational adapter.
func NewMySQL(db *gorm.DB) *Repositories {
	return &Repositories{
		Languages: gormdb.New[models.Language](db, gormdb.Meta[models.Language]{
			Table:         "languages",
			SearchFields:  []string{"name", "folder"},
			ConvertFilter: repositories.TextContains("name"),
		}),
		Currencies: gormdb.New[models.Currency](db, gormdb.Meta[models.Currency]{
			Table:         "currencies",
			SearchFields:  []string{"name", "code"},
			ConvertFilter: repositories.TextContains("name"),
		}),
		Dropdowns: gormdb.New[models.ManageDropdown](db, gormdb.Meta[models.ManageDropdown]{
			Table:        "manage_dropdowns",
			SearchFields: []string{"name", "type"},
		}),
		EmailTemplates: gormdb.New[models.EmailTemplate](db, gormdb.Meta[models.EmailTemplate]{
			Table:        "email_templates",
			SearchFields: []string{"task", "subject"},
		}),
		MetaSettings: gormdb.New[models.MetaSetting](db, gormdb.Meta[models.MetaSetting]{
			Table:        "meta_settings",
			SearchFields: []string{"title", "keywords"},
		}),
		CampaignFAQs: gormdb.New[models.CampaignFAQ](db, gormdb.Meta[models.CampaignFAQ]{
			Table:        "campaign_faqs",
			SearchFields: []string{"question"},
		}),
		LeadInvestors: gormdb.New[models.LeadInvestor](db, gormdb.Meta[models.LeadInvestor]{
			Table:        "lead_investors",
			SearchFields: []string{"name"},
		}),
		CampaignExtras: gormdb.New[models.CampaignExtra](db, gormdb.Meta[models.CampaignExtra]{
			Table:        "campaign_extras",
			SearchFields: []string{"title"},
		}),
	}
}
