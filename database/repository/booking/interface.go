// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"healthtick/database"
	"healthtick/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrBookingNotFound is returned when a delete or lookup references an id
// that is not in storage.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository is the storage collaborator for booking records. All
// availability logic lives above it; this layer only validates shape, writes
// and queries.
type BookingRepository interface {
	// Create validates the input, assigns an id and persists the booking,
	// returning the stored record.
	Create(ctx context.Context, in models.BookingInput) (*models.Booking, error)
	// GetByDate returns the one-off bookings for an exact date, ordered by
	// time ascending.
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	// GetRecurring returns every recurring booking, ordered by time ascending.
	GetRecurring(ctx context.Context) ([]models.Booking, error)
	// GetByID fetches a single booking or ErrBookingNotFound.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Delete removes a booking permanently; ErrBookingNotFound if absent.
	Delete(ctx context.Context, id string) error
	// DeleteAll wipes the collection. Maintenance use only.
	DeleteAll(ctx context.Context) (int64, error)
	// EnsureIndexes creates the collection indexes; called once at startup.
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a BookingRepository over the healthtick
// bookings collection.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("healthtick")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
