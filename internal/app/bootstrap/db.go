// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"github.com/dalemusser/consulthub/internal/app/store/seed"
	"github.com/dalemusser/consulthub/internal/app/system/indexes"
	"github.com/dalemusser/consulthub/internal/app/system/timeouts"
	"github.com/dalemusser/consulthub/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectDB opens the record store selected by store_backend.
//
// The memory backend serves the embedded seed catalog and needs no
// connection. The mongo backend connects and pings before returning so a
// bad URI fails startup rather than the first request.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if appCfg.StoreBackend != catalog.BackendMongo {
		mem, err := catalog.NewSeeded()
		if err != nil {
			return DBDeps{}, fmt.Errorf("load seed catalog: %w", err)
		}
		logger.Info("using in-memory record store")
		return DBDeps{Backend: catalog.BackendMemory, Catalog: mem}, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(appCfg.MongoDatabase)
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		Backend:       catalog.BackendMongo,
		Catalog:       catalog.NewMongo(db),
		MongoClient:   client,
		MongoDatabase: db,
	}, nil
}

// EnsureSchema applies collection validators and indexes, then seeds the
// reference records when seed_on_start is set. It is a no-op for the
// memory backend.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}

	if err := validators.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("ensure validators failed", zap.Error(err))
		return err
	}
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}

	if !appCfg.SeedOnStart {
		return nil
	}
	store, ok := deps.Catalog.(*catalog.Mongo)
	if !ok {
		return fmt.Errorf("seed: unexpected catalog type %T", deps.Catalog)
	}
	cat, err := seed.Load()
	if err != nil {
		return fmt.Errorf("load seed catalog: %w", err)
	}
	if err := store.Seed(ctx, cat); err != nil {
		logger.Error("seed failed", zap.Error(err))
		return err
	}
	logger.Info("seeded reference records",
		zap.Int("consultations", len(cat.Consultations)),
		zap.Int("feedback", len(cat.Feedback)),
		zap.Int("groups", len(cat.Groups)))
	return nil
}
