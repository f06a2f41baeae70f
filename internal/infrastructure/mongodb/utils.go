package mongodb

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/candy-store-api/internal/domain"
	"github.com/jhoicas/candy-store-api/internal/domain/filter"
)

// toBSON traduce un Criteria al filtro de consulta MongoDB.
// OpContains se vuelve una regex literal (metacaracteres escapados) con opción "i".
func toBSON(crit filter.Criteria) bson.M {
	q := bson.M{}
	parts := make([]bson.M, 0, len(crit.Conditions))
	collision := false
	for _, c := range crit.Conditions {
		var cond interface{}
		switch c.Op {
		case filter.OpEquals:
			cond = c.Value
		default:
			cond = primitive.Regex{Pattern: regexp.QuoteMeta(c.Value), Options: "i"}
		}
		if _, ok := q[c.Field]; ok {
			collision = true
		}
		q[c.Field] = cond
		parts = append(parts, bson.M{c.Field: cond})
	}
	if collision {
		return bson.M{"$and": parts}
	}
	return q
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("id %q: %w", id, domain.ErrInvalidID)
	}
	return oid, nil
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("decimal %s: %w", d.String(), err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	if v.IsZero() {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("decimal128 %s: %w", v.String(), err)
	}
	return d, nil
}
