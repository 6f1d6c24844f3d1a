// internal/app/store/appstate/loader.go
package appstate

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/pathakkushagra03/crm-app-sub001/internal/domain/models"
)

// Loader materializes read-only snapshots from MongoDB.
//
// Intentionally tolerant: a failed collection read degrades to an empty
// collection for that snapshot rather than failing the whole dashboard,
// and a record that fails to decode is skipped, not fatal.
type Loader struct {
	db  *mongo.Database
	log *zap.Logger
}

// NewLoader creates a snapshot Loader over the given database.
func NewLoader(db *mongo.Database, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{db: db, log: logger}
}

// Snapshot loads the collections the dashboard reads, scoped to companyID,
// and returns them as an immutable view. It never returns an error; any
// failure is logged and the affected collection comes back empty.
func (l *Loader) Snapshot(ctx context.Context, companyID string) *Snapshot {
	snap := &Snapshot{SelectedCompanyID: companyID}
	if l == nil || l.db == nil {
		return snap
	}

	filter := bson.M{}
	if companyID != "" {
		filter = bson.M{"company_id": companyID}
	}

	snap.ClientRecords = loadAll[models.Client](ctx, l, CollectionClients, filter)
	snap.LeadRecords = loadAll[models.Lead](ctx, l, CollectionLeads, filter)
	snap.TaskRecords = loadAll[models.Task](ctx, l, CollectionTasks, filter)
	return snap
}

// Companies lists the known companies for the tenant picker, sorted by
// name. Tolerant like the rest of the loader: errors log and return nil.
func (l *Loader) Companies(ctx context.Context) []models.Company {
	if l == nil || l.db == nil {
		return nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := l.db.Collection(CollectionCompanies).Find(ctx, bson.M{}, opts)
	if err != nil {
		l.log.Warn("companies read failed", zap.Error(err))
		return nil
	}
	defer cur.Close(ctx)

	var out []models.Company
	for cur.Next(ctx) {
		var c models.Company
		if err := cur.Decode(&c); err != nil {
			l.log.Warn("skipping undecodable company record", zap.Error(err))
			continue
		}
		out = append(out, c)
	}
	if err := cur.Err(); err != nil {
		l.log.Warn("companies cursor error", zap.Error(err))
	}
	return out
}

// loadAll reads every matching record from a collection, skipping records
// that fail to decode.
func loadAll[T any](ctx context.Context, l *Loader, coll string, filter bson.M) []T {
	cur, err := l.db.Collection(coll).Find(ctx, filter)
	if err != nil {
		l.log.Warn("collection read failed, degrading to empty",
			zap.String("collection", coll),
			zap.Error(err))
		return nil
	}
	defer cur.Close(ctx)

	var out []T
	for cur.Next(ctx) {
		var rec T
		if err := cur.Decode(&rec); err != nil {
			l.log.Warn("skipping undecodable record",
				zap.String("collection", coll),
				zap.Error(err))
			continue
		}
		out = append(out, rec)
	}
	if err := cur.Err(); err != nil {
		l.log.Warn("collection cursor error",
			zap.String("collection", coll),
			zap.Error(err))
	}
	return out
}

// EnsureIndexes creates the company-scoped indexes the snapshot queries
// rely on. Called once at startup from the schema hook.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, coll := range []string{CollectionClients, CollectionLeads, CollectionTasks} {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "company_id", Value: 1}},
			Options: options.Index().SetName("idx_" + coll + "_company"),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
