// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates the content collections (if missing) and attaches
// JSON-Schema validators mirroring the required fields the stores check.
// Deployments without collMod support are logged and skipped.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("translations", schema(
		[]string{"ukrainian", "english", "category"},
		bson.M{"difficulty_level": bson.M{"bsonType": "string"}},
	))
	ensure("lessons", schema(
		[]string{"title", "content", "level"},
		bson.M{
			"order_index":    bson.M{"bsonType": bson.A{"int", "long"}},
			"content_format": bson.M{"enum": bson.A{"html", "markdown"}},
		},
	))
	ensure("community_info", schema([]string{"title", "content", "category"}, nil))
	ensure("heritage_info", schema([]string{"title", "content", "category"}, nil))
	ensure("events", schema([]string{"title"}, bson.M{"date": bson.M{"bsonType": "date"}}, "date"))
	ensure("resources", schema([]string{"title", "category"}, nil))

	// Identifier allocation; no validator.
	ensure("counters", nil)

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// schema requires _id (integer), created_at, each of text as a string with
// a non-whitespace character, and any extra required field names.
func schema(text []string, extra bson.M, extraRequired ...string) bson.M {
	required := bson.A{"_id", "created_at"}
	props := bson.M{
		"_id":        bson.M{"bsonType": bson.A{"int", "long"}},
		"created_at": bson.M{"bsonType": "date"},
	}
	for _, f := range text {
		required = append(required, f)
		props[f] = bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}
	}
	for _, f := range extraRequired {
		required = append(required, f)
	}
	for k, v := range extra {
		props[k] = v
	}
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType":   "object",
			"required":   required,
			"properties": props,
		},
	}
}

/* ---------------------- collection helpers & logging ---------------------- */

func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}

// ensureCollection returns created==true only if it actually created name.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		zap.L().Debug("collection exists", zap.String("collection", name))
		return false, nil
	}
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExistsErr(err) {
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func commandErrorMatches(err error, code int32, phrases ...string) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == code {
		return true
	}
	s := strings.ToLower(err.Error())
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func isNamespaceExistsErr(err error) bool {
	return commandErrorMatches(err, 48, "already exists", "namespace exists")
}

func isNoSuchCommand(err error) bool {
	return commandErrorMatches(err, 59, "no such command")
}

func isNotImplemented(err error) bool {
	return commandErrorMatches(err, 115, "not implemented", "not supported")
}
