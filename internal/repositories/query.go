package repositories

// Filter is a backend-neutral predicate: plain values mean equality, wrapper
// values carry the operators both backends can express. Each adapter
// translates it into its engine's query shape.
type Filter map[string]any

// Like matches records whose field contains the value, case-insensitively.
type Like struct {
	Value string
}

// In matches records whose field equals any of the values.
type In struct {
	Values []any
}

// Ne matches records whose field differs from the value.
type Ne struct {
	Value any
}

// Gt matches records whose field is strictly greater than the value.
type Gt struct {
	Value any
}

// Or matches records satisfying at least one of the sub-filters. It is keyed
// under OrKey in a Filter.
type Or []Filter

// OrKey is the reserved filter key whose value must be an Or.
const OrKey = "$or"

// Update is a partial field update, field name to new value.
type Update map[string]any

// QueryOptions tunes a read. Zero values mean adapter defaults: no paging,
// natural order, full projection, no populated paths.
type QueryOptions struct {
	Skip     int64
	Limit    int64
	Sort     map[string]int // field -> 1 ascending, -1 descending
	Select   []string
	Populate []string
}

// WantsPopulate reports whether the options ask for the given inclusion path.
func (o *QueryOptions) WantsPopulate(path string) bool {
	if o == nil {
		return false
	}
	for _, p := range o.Populate {
		if p == path {
			return true
		}
	}
	return false
}

// SearchFilter builds the case-insensitive free-text predicate list endpoints
// use: an OR of substring matches over the given fields.
func SearchFilter(term string, fields []string) Filter {
	if term == "" || len(fields) == 0 {
		return nil
	}
	or := make(Or, 0, len(fields))
	for _, f := range fields {
		or = append(or, Filter{f: Like{Value: term}})
	}
	return Filter{OrKey: or}
}

// TextContains returns a per-entity filter rewrite that relaxes plain string
// equality on the named fields into case-insensitive substring matching.
// Non-string values and other fields pass through untouched.
func TextContains(fields ...string) func(Filter) Filter {
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return func(filter Filter) Filter {
		out := make(Filter, len(filter))
		for k, v := range filter {
			if s, ok := v.(string); ok {
				if _, match := set[k]; match {
					out[k] = Like{Value: s}
					continue
				}
			}
			out[k] = v
		}
		return out
	}
}

// MergeFilters combines filters into one; later keys win. Nil filters are
// skipped, an all-nil input yields an empty filter.
func MergeFilters(filters ...Filter) Filter {
	out := Filter{}
	for _, f := range filters {
		for k, v := range f {
			out[k] = v
		}
	}
	return out
}
