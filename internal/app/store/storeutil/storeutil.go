// Package storeutil holds the pieces every content store shares: the
// validation sentinel, cursor draining, and distinct-value listing.
package storeutil

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalid marks a record rejected before any write.
var ErrInvalid = errors.New("invalid record")

// Validatable is implemented by the domain models.
type Validatable interface {
	Validate() error
}

// Check runs v.Validate and wraps a failure with ErrInvalid, keeping the
// underlying validation errors reachable through errors.As.
func Check(v Validatable) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// NaturalOrder sorts by insertion order.
func NaturalOrder() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
}

// FindAll runs a find and decodes every document. The result is never nil
// so it serializes as [] rather than null.
func FindAll[T any](ctx context.Context, c *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cur, err := c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DistinctStrings returns the distinct non-empty string values of field,
// sorted ascending.
func DistinctStrings(ctx context.Context, c *mongo.Collection, field string) ([]string, error) {
	raw, err := c.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	out := lo.FilterMap(raw, func(v interface{}, _ int) (string, bool) {
		s, ok := v.(string)
		return s, ok && s != ""
	})
	sort.Strings(out)
	return out, nil
}
