package services

import (
	"context"
	"fmt"

	"github.com/yardline/driver-admin-backend/internal/models"
	"github.com/yardline/driver-admin-backend/internal/storage"
)

// listPageSize is the identity provider's maximum page size.
const listPageSize = 1000

// RosterService lists and deletes driver accounts. It only ever talks
// to the identity store.
type RosterService struct {
	identities storage.IdentityStore
}

// NewRosterService creates a new roster service
func NewRosterService(identities storage.IdentityStore) *RosterService {
	return &RosterService{identities: identities}
}

// ListDrivers walks the full account set page by page and concatenates
// the results. Each continuation token is only valid against the
// immediately preceding response, so the loop is strictly sequential.
// Ordering is whatever the provider yields; callers must not rely on it.
func (s *RosterService) ListDrivers(ctx context.Context) ([]*models.DriverAccount, error) {
	drivers := make([]*models.DriverAccount, 0)
	token := ""
	for {
		page, next, err := s.identities.ListDrivers(ctx, listPageSize, token)
		if err != nil {
			return nil, fmt.Errorf("list drivers: %w", err)
		}
		drivers = append(drivers, page...)
		if next == "" {
			break
		}
		token = next
	}
	return drivers, nil
}

// DeleteDriver removes the driver's identity record only. Ticket and
// rating partitions are left in place; a caller wanting a cascade must
// issue it explicitly.
func (s *RosterService) DeleteDriver(ctx context.Context, driverID string) error {
	return s.identities.DeleteDriver(ctx, driverID)
}
