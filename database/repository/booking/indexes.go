// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on booking ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for date + isRecurring + time (primary query pattern)
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "isRecurring", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetName("date_recurring_time_idx"),
		},
		// Index for the recurring-scoped query
		{
			Keys:    bson.D{{Key: "isRecurring", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetName("recurring_time_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
