package services

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"gofund/internal/models"
	"gofund/internal/repositories"
	"gofund/internal/utils"

	"github.com/google/uuid"
)

// fakeRepo is an in-memory repository used by the service tests. It matches
// filters against the gorm column names of the entity's fields, the same
// snake_case vocabulary the real adapters translate.
type fakeRepo[T any, PT interface {
	*T
	models.Entity
}] struct {
	mu    sync.Mutex
	items []*T
	seq   int
}

func newFakeRepo[T any, PT interface {
	*T
	models.Entity
}]() *fakeRepo[T, PT] {
	return &fakeRepo[T, PT]{}
}

func (r *fakeRepo[T, PT]) seed(entities ...*T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range entities {
		pe := PT(e)
		r.seq++
		if pe.GetID().IsZero() {
			pe.SetID(models.ID(fmt.Sprintf("id-%d", r.seq)))
		}
		if pe.GetPublicID().IsZero() {
			pe.SetPublicID(models.PublicID(uuid.NewString()))
		}
		pe.Touch(time.Now())
		r.items = append(r.items, e)
	}
}

func clone[T any](e *T) *T {
	c := *e
	return &c
}

// columnValue walks the struct (including embedded structs) for the field
// whose gorm column tag matches name.
func columnValue(v reflect.Value, name string) (any, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if val, ok := columnValue(v.Field(i), name); ok {
				return val, true
			}
			continue
		}
		for _, part := range strings.Split(f.Tag.Get("gorm"), ";") {
			if strings.TrimPrefix(part, "column:") == name && strings.HasPrefix(part, "column:") {
				return v.Field(i).Interface(), true
			}
		}
	}
	return nil, false
}

func setColumn(v reflect.Value, name string, value any) bool {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if setColumn(v.Field(i), name, value) {
				return true
			}
			continue
		}
		for _, part := range strings.Split(f.Tag.Get("gorm"), ";") {
			if strings.TrimPrefix(part, "column:") == name && strings.HasPrefix(part, "column:") {
				fv := v.Field(i)
				val := reflect.ValueOf(value)
				if val.Type().ConvertibleTo(fv.Type()) {
					fv.Set(val.Convert(fv.Type()))
					return true
				}
				return false
			}
		}
	}
	return false
}

func valuesEqual(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() {
		return false
	}
	if av.Kind() == reflect.String && bv.Kind() == reflect.String {
		return av.String() == bv.String()
	}
	if av.CanInt() && bv.CanInt() {
		return av.Int() == bv.Int()
	}
	return false
}

func asInt64(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.CanInt() {
		return rv.Int(), true
	}
	return 0, false
}

func (r *fakeRepo[T, PT]) matches(e *T, filter repositories.Filter) bool {
	if filter == nil {
		return true
	}
	ev := reflect.ValueOf(e).Elem()
	for key, want := range filter {
		if key == repositories.OrKey {
			or, ok := want.(repositories.Or)
			if !ok {
				return false
			}
			hit := false
			for _, sub := range or {
				if r.matches(e, sub) {
					hit = true
					break
				}
			}
			if !hit {
				return false
			}
			continue
		}

		have, ok := columnValue(ev, key)
		if !ok {
			return false
		}
		switch op := want.(type) {
		case repositories.Like:
			s, ok := have.(string)
			if !ok || !strings.Contains(strings.ToLower(s), strings.ToLower(op.Value)) {
				return false
			}
		case repositories.In:
			found := false
			for _, v := range op.Values {
				if valuesEqual(have, v) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case repositories.Ne:
			if valuesEqual(have, op.Value) {
				return false
			}
		case repositories.Gt:
			hi, ok1 := asInt64(have)
			wi, ok2 := asInt64(op.Value)
			if !ok1 || !ok2 || hi <= wi {
				return false
			}
		default:
			if !valuesEqual(have, want) {
				return false
			}
		}
	}
	return true
}

func (r *fakeRepo[T, PT]) filtered(filter repositories.Filter) []*T {
	var out []*T
	for _, e := range r.items {
		if r.matches(e, filter) {
			out = append(out, e)
		}
	}
	return out
}

func (r *fakeRepo[T, PT]) sortItems(items []*T, sortMap map[string]int) {
	for field, dir := range sortMap {
		field, dir := field, dir
		sort.SliceStable(items, func(i, j int) bool {
			a, _ := columnValue(reflect.ValueOf(items[i]).Elem(), field)
			b, _ := columnValue(reflect.ValueOf(items[j]).Elem(), field)
			if ai, ok := asInt64(a); ok {
				bi, _ := asInt64(b)
				if dir < 0 {
					return ai > bi
				}
				return ai < bi
			}
			as, bs := fmt.Sprint(a), fmt.Sprint(b)
			if dir < 0 {
				return as > bs
			}
			return as < bs
		})
	}
}

func (r *fakeRepo[T, PT]) GetAll(ctx context.Context, filter repositories.Filter, opts *repositories.QueryOptions) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := r.filtered(filter)
	if opts != nil && opts.Sort != nil {
		r.sortItems(matched, opts.Sort)
	}
	out := make([]T, 0, len(matched))
	for _, e := range matched {
		out = append(out, *clone(e))
	}
	return out, nil
}

func (r *fakeRepo[T, PT]) GetDetailByID(ctx context.Context, id models.ID) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if PT(e).GetID() == id {
			return clone(e), nil
		}
	}
	return nil, nil
}

func (r *fakeRepo[T, PT]) GetDetail(ctx context.Context, filter repositories.Filter, opts *repositories.QueryOptions) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := r.filtered(filter)
	if len(matched) == 0 {
		return nil, nil
	}
	if opts != nil && opts.Sort != nil {
		r.sortItems(matched, opts.Sort)
	}
	return clone(matched[0]), nil
}

func (r *fakeRepo[T, PT]) Insert(ctx context.Context, entity *T) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := clone(entity)
	pe := PT(stored)
	r.seq++
	pe.SetID(models.ID(fmt.Sprintf("id-%d", r.seq)))
	pe.SetPublicID(models.PublicID(uuid.NewString()))
	pe.Touch(time.Now())
	r.items = append(r.items, stored)
	return clone(stored), nil
}

func (r *fakeRepo[T, PT]) UpdateByID(ctx context.Context, id models.ID, update repositories.Update) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if PT(e).GetID() == id {
			for k, v := range update {
				setColumn(reflect.ValueOf(e).Elem(), k, v)
			}
			PT(e).Touch(time.Now())
			return clone(e), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeRepo[T, PT]) UpdateMany(ctx context.Context, filter repositories.Filter, update repositories.Update) (int64, []T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := r.filtered(filter)
	for _, e := range matched {
		for k, v := range update {
			setColumn(reflect.ValueOf(e).Elem(), k, v)
		}
	}
	reread := r.filtered(filter)
	out := make([]T, 0, len(reread))
	for _, e := range reread {
		out = append(out, *clone(e))
	}
	return int64(len(matched)), out, nil
}

func (r *fakeRepo[T, PT]) DeleteByID(ctx context.Context, id models.ID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.items {
		if PT(e).GetID() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo[T, PT]) DeleteMany(ctx context.Context, filter repositories.Filter) (int64, []T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []*T
	var removed []T
	for _, e := range r.items {
		if r.matches(e, filter) {
			removed = append(removed, *clone(e))
		} else {
			kept = append(kept, e)
		}
	}
	r.items = kept
	return int64(len(removed)), removed, nil
}

func (r *fakeRepo[T, PT]) Count(ctx context.Context, filter repositories.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.filtered(filter))), nil
}

func (r *fakeRepo[T, PT]) Exists(ctx context.Context, filter repositories.Filter) (bool, error) {
	n, err := r.Count(ctx, filter)
	return n > 0, err
}

func (r *fakeRepo[T, PT]) FindWithPagination(ctx context.Context, filter repositories.Filter, params *utils.PaginationParams) (*repositories.PaginatedResult[T], error) {
	if params == nil {
		params = &utils.PaginationParams{}
	}
	params.Normalize()

	r.mu.Lock()
	defer r.mu.Unlock()
	matched := r.filtered(filter)
	r.sortItems(matched, params.GetSortMap())
	total := int64(len(matched))

	start := params.GetSkip()
	if start > total {
		start = total
	}
	end := start + params.GetLimit()
	if end > total {
		end = total
	}
	items := make([]T, 0, end-start)
	for _, e := range matched[start:end] {
		items = append(items, *clone(e))
	}
	return &repositories.PaginatedResult[T]{
		Items:      items,
		Pagination: utils.CreatePaginationMeta(params, total),
	}, nil
}
