package mongo

import (
	"regexp"

	"github.com/syntrixbase/todos/pkg/model"
	"go.mongodb.org/mongo-driver/bson"
)

func makeFilterBSON(filters model.Filters) (bson.M, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	bsonFilter := bson.M{}

	for _, f := range filters {
		fieldName := mapField(f.Field)
		switch f.Op {
		case model.OpEq:
			bsonFilter[fieldName] = bson.M{"$eq": f.Value}
		case model.OpContains:
			// Literal, case-sensitive substring.
			bsonFilter[fieldName] = bson.M{"$regex": regexp.QuoteMeta(f.Value)}
		}
	}

	return bsonFilter, nil
}

// makeSortBSON sorts on a single field. Fields that are not Todo attributes are
// passed through unchanged; mongo then treats every value as missing and returns
// documents in natural order.
func makeSortBSON(s model.Sort) bson.D {
	field := s.Field
	if field == "" {
		field = model.DefaultSortField
	}
	return bson.D{{Key: mapField(field), Value: direction(s)}}
}

func direction(s model.Sort) int {
	if s.Descending() {
		return -1
	}
	return 1
}

func mapField(field string) string {
	switch field {
	case "id", "_id":
		return "_id"
	default:
		return field
	}
}
