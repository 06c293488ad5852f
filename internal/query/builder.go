// Package query translates HTTP query parameters into store filters and ordering.
//
// Translation is best-effort: unknown parameters are ignored, empty values add no
// constraint, and an unrecognized sort order falls back to ascending. Filter values are
// taken verbatim with no type coercion or case folding, so status=True does not match a
// stored "true". BuildStrict layers validation on top for callers that want rejection
// instead of fallback.
package query

import (
	"log/slog"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/syntrixbase/todos/pkg/model"
)

// Recognized query parameter names. Matching is exact and case-sensitive.
const (
	KeyCategory  = "category"
	KeyOwner     = "owner"
	KeyStatus    = "status"
	KeyBody      = "body"
	KeySortBy    = "sortBy"
	KeySortOrder = "sortOrder"

	// GroupByCount orders category groups by their size.
	GroupByCount = "count"
)

// Params is the decoded form of the recognized parameters. The validate tags
// are only enforced by BuildStrict.
type Params struct {
	Category  string `schema:"category"`
	Owner     string `schema:"owner"`
	Status    string `schema:"status"`
	Body      string `schema:"body"`
	SortBy    string `schema:"sortBy" validate:"omitempty,oneof=_id id body status owner category"`
	SortOrder string `schema:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// GroupParams is the decoded form of the grouping parameters.
type GroupParams struct {
	SortBy    string `schema:"sortBy" validate:"omitempty,oneof=category count"`
	SortOrder string `schema:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// schema.Decoder caches struct metadata and is safe for concurrent use.
var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

var recognizedKeys = []string{KeyCategory, KeyOwner, KeyStatus, KeyBody, KeySortBy, KeySortOrder}

// Decode extracts the recognized parameters from values. For a repeated key the
// last value wins. Decoding never fails for string fields; if the decoder reports an
// error anyway the parameters decoded so far are kept.
func Decode(values url.Values) Params {
	var p Params
	decode(&p, values)
	return p
}

// DecodeGroup extracts the grouping parameters from values.
func DecodeGroup(values url.Values) GroupParams {
	var p GroupParams
	decode(&p, values)
	return p
}

func decode(dst any, values url.Values) {
	src := recognized(values)
	if len(src) == 0 {
		return
	}
	if err := decoder.Decode(dst, src); err != nil {
		slog.Debug("Failed to decode query parameters", "component", "query", "error", err)
	}
}

// recognized keeps the exact-case recognized keys, each reduced to its last value.
// The schema decoder matches aliases case-insensitively, so "Owner" must be dropped
// before it gets there.
func recognized(values url.Values) url.Values {
	out := make(url.Values, len(recognizedKeys))
	for _, key := range recognizedKeys {
		if vs := values[key]; len(vs) > 0 {
			out[key] = vs[len(vs)-1:]
		}
	}
	return out
}

// Build converts query parameters into filters and a sort. It never fails.
func Build(values url.Values) (model.Filters, model.Sort) {
	return Decode(values).Build()
}

// Build converts decoded parameters into filters and a sort.
func (p Params) Build() (model.Filters, model.Sort) {
	var filters model.Filters
	if p.Category != "" {
		filters = append(filters, model.Filter{Field: model.FieldCategory, Op: model.OpEq, Value: p.Category})
	}
	if p.Owner != "" {
		filters = append(filters, model.Filter{Field: model.FieldOwner, Op: model.OpEq, Value: p.Owner})
	}
	if p.Status != "" {
		filters = append(filters, model.Filter{Field: model.FieldStatus, Op: model.OpEq, Value: p.Status})
	}
	if p.Body != "" {
		filters = append(filters, model.Filter{Field: model.FieldBody, Op: model.OpContains, Value: p.Body})
	}

	sort := model.DefaultSort()
	// sortBy is not checked against Todo attributes here. See BuildStrict.
	if p.SortBy != "" {
		sort.Field = p.SortBy
	}
	if p.SortOrder == string(model.Desc) {
		sort.Direction = model.Desc
	}

	return filters, sort
}

// BuildStrict is Build with validation of the sort parameters. It returns
// ValidationErrors, which matches model.ErrInvalidQuery, when sortBy is not a Todo
// attribute or sortOrder is neither "asc" nor "desc". Filter values are still taken
// verbatim.
func BuildStrict(values url.Values) (model.Filters, model.Sort, error) {
	p := Decode(values)
	if err := validateParams(&p); err != nil {
		return nil, model.Sort{}, err
	}
	filters, sort := p.Build()
	return filters, sort, nil
}

// GroupSort converts grouping parameters into a sort over "category" (default) or
// "count". Other sortBy values fall back to category; sortOrder follows Build.
func GroupSort(values url.Values) model.Sort {
	return DecodeGroup(values).Sort()
}

// GroupSortStrict is GroupSort with validation. Unknown sortBy or sortOrder values
// yield ValidationErrors.
func GroupSortStrict(values url.Values) (model.Sort, error) {
	p := DecodeGroup(values)
	if err := validateParams(&p); err != nil {
		return model.Sort{}, err
	}
	return p.Sort(), nil
}

// Sort converts decoded grouping parameters into a sort.
func (p GroupParams) Sort() model.Sort {
	sort := model.Sort{Field: model.FieldCategory, Direction: model.Asc}
	if p.SortBy == GroupByCount {
		sort.Field = GroupByCount
	}
	if p.SortOrder == string(model.Desc) {
		sort.Direction = model.Desc
	}
	return sort
}
