// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
//
// Catalog is always set. The Mongo fields are nil with the memory backend.
type DBDeps struct {
	Backend string
	Catalog catalog.Reader

	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
}
