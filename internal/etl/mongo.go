package etl

import (
	"context"
	"fmt"
	"time"

	"github.com/pwysocki/pipevine/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoLoader inserts record-set rows as documents into a collection.
type MongoLoader struct {
	Client     *mongo.Client
	Database   string
	Collection string
}

func (m *MongoLoader) Load(ctx context.Context, rs *RecordSet) error {
	if err := rs.Check(); err != nil {
		return err
	}
	if len(rs.Rows) == 0 {
		logger.Warnf("Record set is empty, nothing to insert")
		return nil
	}

	docs := make([]interface{}, len(rs.Rows))
	for i, row := range rs.Rows {
		docs[i] = row
	}

	coll := m.Client.Database(m.Database).Collection(m.Collection)
	insertCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := coll.InsertMany(insertCtx, docs)
	if err != nil {
		return fmt.Errorf("%w: mongo insert into %s.%s: %v", ErrWrite, m.Database, m.Collection, err)
	}
	logger.Infof("Mongo InsertMany: %d documents into %s.%s", len(res.InsertedIDs), m.Database, m.Collection)
	return nil
}
