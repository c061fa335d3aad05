package models

import "time"

// ID is the storage-native internal key of a record. It is opaque to callers:
// the mongodb backend stores an ObjectID hex, the mysql backend a uuid. It is
// never serialized into API responses.
type ID string

// PublicID is the stable, externally visible identifier of a record. It is
// generated by the repository at insert time and never changes afterwards.
type PublicID string

func (id ID) IsZero() bool { return id == "" }

func (id PublicID) IsZero() bool { return id == "" }

// Entity is implemented by every persisted model so a backend adapter can
// assign storage identifiers and timestamps at insert time.
type Entity interface {
	GetID() ID
	SetID(id ID)
	GetPublicID() PublicID
	SetPublicID(id PublicID)
	Touch(now time.Time)
}

// LanguageScoped is implemented by models that carry a foreign reference to a
// language, so adapters can resolve the reference when a query asks for it.
type LanguageScoped interface {
	GetLanguageID() ID
	SetLanguage(ref *LanguageRef)
}

// LanguageRef is the minimal language descriptor attached to a language-scoped
// record when the language path is populated. Only the public identifier and
// the display name cross the boundary.
type LanguageRef struct {
	PublicID PublicID `json:"public_id" bson:"public_id"`
	Name     string   `json:"name" bson:"name"`
}

// Base carries the identifier pair and timestamps shared by every entity.
type Base struct {
	ID        ID        `json:"-" bson:"-" gorm:"column:id;primaryKey"`
	PublicID  PublicID  `json:"public_id" bson:"public_id" gorm:"column:public_id;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" gorm:"column:updated_at"`
}

func (b *Base) GetID() ID               { return b.ID }
func (b *Base) SetID(id ID)             { b.ID = id }
func (b *Base) GetPublicID() PublicID   { return b.PublicID }
func (b *Base) SetPublicID(id PublicID) { b.PublicID = id }

func (b *Base) Touch(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
