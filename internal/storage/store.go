package storage

import (
	"context"
	"errors"

	"github.com/yardline/driver-admin-backend/internal/models"
)

// ErrNotFound signals that the requested record does not exist, as
// opposed to the store being unreachable.
var ErrNotFound = errors.New("record not found")

// IdentityStore reads and deletes driver accounts in the external
// identity provider.
type IdentityStore interface {
	// GetDriver fetches one account by uid. Returns ErrNotFound if no
	// such account exists.
	GetDriver(ctx context.Context, uid string) (*models.DriverAccount, error)

	// ListDrivers fetches one page of accounts. pageToken is the opaque
	// continuation token from the previous page ("" for the first page);
	// the returned token is "" when no pages remain.
	ListDrivers(ctx context.Context, pageSize int, pageToken string) ([]*models.DriverAccount, string, error)

	// DeleteDriver removes one account by uid. Returns ErrNotFound if no
	// such account exists.
	DeleteDriver(ctx context.Context, uid string) error
}

// RecordStore reads the externally-owned delivery, ticket and rating
// collections. An absent collection or partition is an empty map, not
// an error.
type RecordStore interface {
	GetAllDeliveries(ctx context.Context) (map[string]*models.Delivery, error)
	GetScaleTickets(ctx context.Context, driverID string) (map[string]*models.ScaleTicket, error)
	GetRatings(ctx context.Context, driverID string) (map[string]*models.Rating, error)
}
