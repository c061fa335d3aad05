package mongodb

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"gofund/internal/models"
	"gofund/internal/repositories"
	"gofund/internal/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// Mapping parameterizes the adapter per entity: the collection it maps to,
// the free-text search fields, the to-entity/to-document conversion pair, and
// an optional per-entity filter rewrite applied before bson translation.
type Mapping[E any, D any] struct {
	Collection    string
	SearchFields  []string
	ToEntity      func(d D) (E, error)
	ToDocument    func(e *E) (D, error)
	ConvertFilter func(repositories.Filter) repositories.Filter
}

// Repository implements the generic contract against a mongo collection.
// One instance exists per entity, built from its Mapping at startup.
type Repository[E any, PE interface {
	*E
	models.Entity
}, D any] struct {
	db         *mongo.Database
	collection *mongo.Collection
	mapping    Mapping[E, D]
}

func New[E any, PE interface {
	*E
	models.Entity
}, D any](db *mongo.Database, mapping Mapping[E, D]) *Repository[E, PE, D] {
	return &Repository[E, PE, D]{
		db:         db,
		collection: db.Collection(mapping.Collection),
		mapping:    mapping,
	}
}

func (r *Repository[E, PE, D]) filter(filter repositories.Filter) bson.M {
	if r.mapping.ConvertFilter != nil {
		filter = r.mapping.ConvertFilter(filter)
	}
	return ToBSON(filter)
}

func findOptions(opts *repositories.QueryOptions) *options.FindOptions {
	fo := options.Find()
	if opts == nil {
		return fo
	}
	if opts.Skip > 0 {
		fo.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		fo.SetLimit(opts.Limit)
	}
	if len(opts.Sort) > 0 {
		// Field order matters in a compound sort; map iteration would
		// shuffle it between calls.
		fields := make([]string, 0, len(opts.Sort))
		for field := range opts.Sort {
			fields = append(fields, field)
		}
		slices.Sort(fields)
		sort := bson.D{}
		for _, field := range fields {
			sort = append(sort, bson.E{Key: field, Value: opts.Sort[field]})
		}
		fo.SetSort(sort)
	}
	if len(opts.Select) > 0 {
		projection := bson.M{}
		for _, field := range opts.Select {
			projection[field] = 1
		}
		fo.SetProjection(projection)
	}
	return fo
}

func (r *Repository[E, PE, D]) GetAll(ctx context.Context, filter repositories.Filter, opts *repositories.QueryOptions) ([]E, error) {
	cursor, err := r.collection.Find(ctx, r.filter(filter), findOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.mapping.Collection, err)
	}
	defer cursor.Close(ctx)

	var items []E
	for cursor.Next(ctx) {
		var doc D
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", r.mapping.Collection, err)
		}
		entity, err := r.mapping.ToEntity(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, entity)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", r.mapping.Collection, err)
	}

	if opts.WantsPopulate("language") {
		if err := r.populateLanguages(ctx, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *Repository[E, PE, D]) GetDetailByID(ctx context.Context, id models.ID) (*E, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, nil
	}
	return r.GetDetail(ctx, repositories.Filter{"_id": oid}, nil)
}

func (r *Repository[E, PE, D]) GetDetail(ctx context.Context, filter repositories.Filter, opts *repositories.QueryOptions) (*E, error) {
	fo := options.FindOne()
	if opts != nil {
		if len(opts.Sort) > 0 {
			sort := bson.D{}
			for field, dir := range opts.Sort {
				sort = append(sort, bson.E{Key: field, Value: dir})
			}
			fo.SetSort(sort)
		}
		if len(opts.Select) > 0 {
			projection := bson.M{}
			for _, field := range opts.Select {
				projection[field] = 1
			}
			fo.SetProjection(projection)
		}
	}

	var doc D
	err := r.collection.FindOne(ctx, r.filter(filter), fo).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", r.mapping.Collection, err)
	}
	entity, err := r.mapping.ToEntity(doc)
	if err != nil {
		return nil, err
	}

	if opts.WantsPopulate("language") {
		items := []E{entity}
		if err := r.populateLanguages(ctx, items); err != nil {
			return nil, err
		}
		entity = items[0]
	}
	return &entity, nil
}

func (r *Repository[E, PE, D]) Insert(ctx context.Context, entity *E) (*E, error) {
	pe := PE(entity)
	pe.SetID(models.ID(primitive.NewObjectID().Hex()))
	pe.SetPublicID(models.PublicID(uuid.NewString()))
	pe.Touch(time.Now())

	doc, err := r.mapping.ToDocument(entity)
	if err != nil {
		return nil, err
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", r.mapping.Collection, err)
	}
	return entity, nil
}

func (r *Repository[E, PE, D]) UpdateByID(ctx context.Context, id models.ID, update repositories.Update) (*E, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, repositories.ErrNotFound
	}

	update["updated_at"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, ToSetDocument(update))
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", r.mapping.Collection, err)
	}
	if res.MatchedCount == 0 {
		return nil, repositories.ErrNotFound
	}
	return r.GetDetailByID(ctx, id)
}

// UpdateMany mutates then re-reads by the same filter; the bulk update API
// does not return document content, so updated reflects post-update state.
func (r *Repository[E, PE, D]) UpdateMany(ctx context.Context, filter repositories.Filter, update repositories.Update) (int64, []E, error) {
	update["updated_at"] = time.Now()
	res, err := r.collection.UpdateMany(ctx, r.filter(filter), ToSetDocument(update))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to bulk update %s: %w", r.mapping.Collection, err)
	}
	updated, err := r.GetAll(ctx, filter, nil)
	if err != nil {
		return res.MatchedCount, nil, err
	}
	return res.MatchedCount, updated, nil
}

func (r *Repository[E, PE, D]) DeleteByID(ctx context.Context, id models.ID) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return false, nil
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false, err
		}
		// Store rejections surface as false.
		return false, nil
	}
	return res.DeletedCount > 0, nil
}

func (r *Repository[E, PE, D]) DeleteMany(ctx context.Context, filter repositories.Filter) (int64, []E, error) {
	snapshot, err := r.GetAll(ctx, filter, nil)
	if err != nil {
		return 0, nil, err
	}
	res, err := r.collection.DeleteMany(ctx, r.filter(filter))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to bulk delete %s: %w", r.mapping.Collection, err)
	}
	return res.DeletedCount, snapshot, nil
}

func (r *Repository[E, PE, D]) Count(ctx context.Context, filter repositories.Filter) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, r.filter(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.mapping.Collection, err)
	}
	return count, nil
}

func (r *Repository[E, PE, D]) Exists(ctx context.Context, filter repositories.Filter) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, r.filter(filter), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check existence in %s: %w", r.mapping.Collection, err)
	}
	return count > 0, nil
}

func (r *Repository[E, PE, D]) FindWithPagination(ctx context.Context, filter repositories.Filter, params *utils.PaginationParams) (*repositories.PaginatedResult[E], error) {
	if params == nil {
		params = &utils.PaginationParams{}
	}
	params.Normalize()

	if params.Search != "" {
		filter = repositories.MergeFilters(filter, repositories.SearchFilter(params.Search, r.mapping.SearchFields))
	}

	opts := &repositories.QueryOptions{
		Skip:  params.GetSkip(),
		Limit: params.GetLimit(),
		Sort:  params.GetSortMap(),
	}

	var (
		items []E
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = r.GetAll(gctx, filter, opts)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = r.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &repositories.PaginatedResult[E]{
		Items:      items,
		Pagination: utils.CreatePaginationMeta(params, total),
	}, nil
}

// populateLanguages resolves raw language references into minimal descriptors
// via a second read on the languages collection. References that already
// arrived populated keep the descriptor the mapping extracted.
func (r *Repository[E, PE, D]) populateLanguages(ctx context.Context, items []E) error {
	oids := make([]primitive.ObjectID, 0, len(items))
	seen := make(map[models.ID]struct{}, len(items))
	for i := range items {
		scoped, ok := any(PE(&items[i])).(models.LanguageScoped)
		if !ok {
			return nil
		}
		id := scoped.GetLanguageID()
		if id.IsZero() {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if oid, err := primitive.ObjectIDFromHex(string(id)); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return nil
	}

	cursor, err := r.db.Collection("languages").Find(ctx,
		bson.M{"_id": bson.M{"$in": oids}},
		options.Find().SetProjection(bson.M{"public_id": 1, "name": 1}))
	if err != nil {
		return fmt.Errorf("failed to resolve language references: %w", err)
	}
	defer cursor.Close(ctx)

	refs := make(map[models.ID]*models.LanguageRef)
	for cursor.Next(ctx) {
		var doc struct {
			ID       primitive.ObjectID `bson:"_id"`
			PublicID string             `bson:"public_id"`
			Name     string             `bson:"name"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return fmt.Errorf("failed to decode language reference: %w", err)
		}
		refs[models.ID(doc.ID.Hex())] = &models.LanguageRef{
			PublicID: models.PublicID(doc.PublicID),
			Name:     doc.Name,
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("failed to iterate language references: %w", err)
	}

	for i := range items {
		scoped := any(PE(&items[i])).(models.LanguageScoped)
		if ref, ok := refs[scoped.GetLanguageID()]; ok {
			scoped.SetLanguage(ref)
		}
	}
	return nil
}
