package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Migration struct {
	Version     int
	Description string
	Up          func(*mongo.Database) error
	Down        func(*mongo.Database) error
}

type Migrator struct {
	db         *mongo.Database
	migrations []Migration
}

func NewMigrator(db *mongo.Database) *Migrator {
	return &Migrator{
		db:         db,
		migrations: getMigrations(),
	}
}

func (m *Migrator) Up() error {
	err := m.createMigrationsCollection()
	if err != nil {
		return err
	}

	currentVersion, err := m.getCurrentVersion()
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if migration.Version > currentVersion {
			log.Printf("Running migration %d: %s", migration.Version, migration.Description)

			err := migration.Up(m.db)
			if err != nil {
				return fmt.Errorf("migration %d failed: %w", migration.Version, err)
			}

			err = m.updateVersion(migration.Version)
			if err != nil {
				return fmt.Errorf("failed to update migration version: %w", err)
			}

			log.Printf("Migration %d completed successfully", migration.Version)
		}
	}

	return nil
}

func (m *Migrator) createMigrationsCollection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collections, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return err
	}

	for _, name := range collections {
		if name == "migrations" {
			return nil
		}
	}

	return m.db.CreateCollection(ctx, "migrations")
}

func (m *Migrator) getCurrentVersion() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var result struct {
		Version int `bson:"version"`
	}

	err := m.db.Collection("migrations").FindOne(ctx, bson.D{}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}

	return result.Version, nil
}

func (m *Migrator) updateVersion(version int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := m.db.Collection("migrations").ReplaceOne(
		ctx,
		bson.D{},
		bson.D{{Key: "version", Value: version}, {Key: "updated_at", Value: time.Now()}},
		options.Replace().SetUpsert(true),
	)

	return err
}

func getMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Create languages collection with indexes",
			Up:          createLanguageIndexes,
			Down: func(db *mongo.Database) error {
				return db.Collection("languages").Drop(context.Background())
			},
		},
		{
			Version:     2,
			Description: "Create currencies collection with indexes",
			Up:          createCurrencyIndexes,
			Down: func(db *mongo.Database) error {
				return db.Collection("currencies").Drop(context.Background())
			},
		},
		{
			Version:     3,
			Description: "Create manage_dropdowns collection with indexes",
			Up:          createDropdownIndexes,
			Down: func(db *mongo.Database) error {
				return db.Collection("manage_dropdowns").Drop(context.Background())
			},
		},
		{
			Version:     4,
			Description: "Create email_templates collection with unique (task, language) index",
			Up:          createEmailTemplateIndexes,
			Down: func(db *mongo.Database) error {
				return db.Collection("email_templates").Drop(context.Background())
			},
		},
		{
			Version:     5,
			Description: "Create meta_settings collection with unique language index",
			Up:          createMetaSettingIndexes,
			Down: func(db *mongo.Database) error {
				return db.Collection("meta_settings").Drop(context.Background())
			},
		},
		{
			Version:     6,
			Description: "Create campaign sub-resource collections with indexes",
			Up:          createCampaignContentIndexes,
			Down: func(db *mongo.Database) error {
				ctx := context.Background()
				for _, name := range []string{"campaign_faqs", "lead_investors", "campaign_extras"} {
					if err := db.Collection(name).Drop(ctx); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}

func createIndexes(db *mongo.Database, collection string, indexes []mongo.IndexModel) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes)
	return err
}

func publicIDIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "public_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}

func createLanguageIndexes(db *mongo.Database) error {
	return createIndexes(db, "languages", []mongo.IndexModel{
		publicIDIndex(),
		{Keys: bson.D{{Key: "folder", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "is_default", Value: 1}}},
	})
}

func createCurrencyIndexes(db *mongo.Database) error {
	return createIndexes(db, "currencies", []mongo.IndexModel{
		publicIDIndex(),
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
}

func createDropdownIndexes(db *mongo.Database) error {
	return createIndexes(db, "manage_dropdowns", []mongo.IndexModel{
		publicIDIndex(),
		{Keys: bson.D{{Key: "unique_code", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "language_id", Value: 1}}},
	})
}

func createEmailTemplateIndexes(db *mongo.Database) error {
	return createIndexes(db, "email_templates", []mongo.IndexModel{
		publicIDIndex(),
		{
			Keys:    bson.D{{Key: "task", Value: 1}, {Key: "language_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
}

func createMetaSettingIndexes(db *mongo.Database) error {
	return createIndexes(db, "meta_settings", []mongo.IndexModel{
		publicIDIndex(),
		{
			Keys:    bson.D{{Key: "language_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
}

func createCampaignContentIndexes(db *mongo.Database) error {
	for _, name := range []string{"campaign_faqs", "lead_investors", "campaign_extras"} {
		err := createIndexes(db, name, []mongo.IndexModel{
			publicIDIndex(),
			{Keys: bson.D{{Key: "campaign_id", Value: 1}}},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
