// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	consultationstore "github.com/dalemusser/consulthub/internal/app/store/consultations"
	feedbackstore "github.com/dalemusser/consulthub/internal/app/store/feedback"
	groupstore "github.com/dalemusser/consulthub/internal/app/store/groups"
	"github.com/dalemusser/consulthub/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates the catalog collections (if missing) and attaches
// JSON-Schema validators that pin every categorical field to its known
// values. Servers without collMod support are logged and skipped.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
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

	ensure(consultationstore.Collection, consultationsSchema())
	ensure(feedbackstore.Collection, feedbackSchema())
	ensure(groupstore.Collection, groupsSchema())

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
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

/* ------------------------- JSON-Schema docs ---------------------- */

func enum(vals []string) bson.M {
	a := make(bson.A, 0, len(vals))
	for _, v := range vals {
		a = append(a, v)
	}
	return bson.M{"enum": a}
}

var nonBlank = bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}

var count = bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0}

func consultationsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title", "group", "status", "priority", "position"},
			"properties": bson.M{
				"title":            nonBlank,
				"group":            nonBlank,
				"status":           enum(models.ConsultationStatuses),
				"priority":         enum(models.Priorities),
				"responses":        count,
				"target_responses": count,
				"position":         count,
			},
		},
	}
}

func feedbackSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"document_title", "status", "priority", "category", "position"},
			"properties": bson.M{
				"document_title": nonBlank,
				"status":         enum(models.FeedbackStatuses),
				"priority":       enum(models.Priorities),
				"category":       enum(models.FeedbackCategories),
				"helpful":        count,
				"position":       count,
			},
		},
	}
}

func groupsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "access_level", "position"},
			"properties": bson.M{
				"name":                 nonBlank,
				"access_level":         enum(models.AccessLevels),
				"member_count":         count,
				"active_consultations": count,
				"position":             count,
				"members":              bson.M{"bsonType": "array"},
			},
		},
	}
}
