package mongodb

import (
	"regexp"

	"gofund/internal/models"
	"gofund/internal/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToBSON translates the backend-neutral filter into a mongo query document.
// The reserved "id" field maps to "_id"; typed identifiers are converted to
// their stored representation.
func ToBSON(filter repositories.Filter) bson.M {
	out := bson.M{}
	for field, value := range filter {
		if field == repositories.OrKey {
			if groups, ok := value.(repositories.Or); ok {
				or := make([]bson.M, 0, len(groups))
				for _, g := range groups {
					or = append(or, ToBSON(g))
				}
				out["$or"] = or
			}
			continue
		}
		if field == "id" {
			field = "_id"
		}
		switch op := value.(type) {
		case repositories.Like:
			// Substring match only; the term must not act as a pattern.
			out[field] = bson.M{"$regex": regexp.QuoteMeta(op.Value), "$options": "i"}
		case repositories.In:
			values := make([]any, 0, len(op.Values))
			for _, v := range op.Values {
				values = append(values, storedValue(v))
			}
			out[field] = bson.M{"$in": values}
		case repositories.Ne:
			out[field] = bson.M{"$ne": storedValue(op.Value)}
		case repositories.Gt:
			out[field] = bson.M{"$gt": storedValue(op.Value)}
		default:
			out[field] = storedValue(value)
		}
	}
	return out
}

// storedValue maps typed identifiers onto their document representation: an
// internal key becomes an ObjectID, a public identifier stays a string.
func storedValue(v any) any {
	switch t := v.(type) {
	case models.ID:
		if oid, err := primitive.ObjectIDFromHex(string(t)); err == nil {
			return oid
		}
		return string(t)
	case models.PublicID:
		return string(t)
	default:
		return v
	}
}

// ToSetDocument converts a partial update into a $set payload.
func ToSetDocument(update repositories.Update) bson.M {
	set := bson.M{}
	for field, value := range update {
		set[field] = storedValue(value)
	}
	return bson.M{"$set": set}
}
