package storage

import (
	"context"
	"fmt"

	"firebase.google.com/go/auth"
	"firebase.google.com/go/db"
	"google.golang.org/api/iterator"

	"github.com/yardline/driver-admin-backend/internal/models"
)

// FirebaseIdentityStore is the production IdentityStore backed by
// Firebase Auth.
type FirebaseIdentityStore struct {
	client *auth.Client
}

// NewFirebaseIdentityStore creates an identity store over an auth client
func NewFirebaseIdentityStore(client *auth.Client) *FirebaseIdentityStore {
	return &FirebaseIdentityStore{client: client}
}

func (s *FirebaseIdentityStore) GetDriver(ctx context.Context, uid string) (*models.DriverAccount, error) {
	user, err := s.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch driver account %s: %w", uid, err)
	}
	return driverAccountFromUser(user), nil
}

func (s *FirebaseIdentityStore) ListDrivers(ctx context.Context, pageSize int, pageToken string) ([]*models.DriverAccount, string, error) {
	pager := iterator.NewPager(s.client.Users(ctx, ""), pageSize, pageToken)
	var page []*auth.ExportedUserRecord
	next, err := pager.NextPage(&page)
	if err != nil {
		return nil, "", fmt.Errorf("list driver accounts: %w", err)
	}
	accounts := make([]*models.DriverAccount, 0, len(page))
	for _, u := range page {
		accounts = append(accounts, driverAccountFromUser(u.UserRecord))
	}
	return accounts, next, nil
}

func (s *FirebaseIdentityStore) DeleteDriver(ctx context.Context, uid string) error {
	if err := s.client.DeleteUser(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete driver account %s: %w", uid, err)
	}
	return nil
}

// driverAccountFromUser maps the provider record into the domain shape.
// Empty strings from the provider become nil so callers can tell "not
// set" apart from "".
func driverAccountFromUser(u *auth.UserRecord) *models.DriverAccount {
	acct := &models.DriverAccount{
		ID:       u.UID,
		Email:    u.Email,
		Disabled: u.Disabled,
	}
	if u.DisplayName != "" {
		name := u.DisplayName
		acct.DisplayName = &name
	}
	if u.PhoneNumber != "" {
		phone := u.PhoneNumber
		acct.PhoneNumber = &phone
	}
	if u.UserMetadata != nil {
		acct.CreatedAt = u.UserMetadata.CreationTimestamp
		if u.UserMetadata.LastLogInTimestamp != 0 {
			ts := u.UserMetadata.LastLogInTimestamp
			acct.LastSignInAt = &ts
		}
	}
	return acct
}

// FirebaseRecordStore is the production RecordStore backed by the
// Realtime Database.
type FirebaseRecordStore struct {
	client *db.Client
}

// NewFirebaseRecordStore creates a record store over a database client
func NewFirebaseRecordStore(client *db.Client) *FirebaseRecordStore {
	return &FirebaseRecordStore{client: client}
}

func (s *FirebaseRecordStore) GetAllDeliveries(ctx context.Context) (map[string]*models.Delivery, error) {
	// No server-side filter on assignment; the aggregator scans the lot.
	var deliveries map[string]*models.Delivery
	if err := s.client.NewRef("deliveries").Get(ctx, &deliveries); err != nil {
		return nil, fmt.Errorf("read deliveries: %w", err)
	}
	return deliveries, nil
}

func (s *FirebaseRecordStore) GetScaleTickets(ctx context.Context, driverID string) (map[string]*models.ScaleTicket, error) {
	var tickets map[string]*models.ScaleTicket
	if err := s.client.NewRef("scaleTickets/"+driverID).Get(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("read scale tickets for %s: %w", driverID, err)
	}
	// An absent partition decodes to a nil map, which is the empty case.
	return tickets, nil
}

func (s *FirebaseRecordStore) GetRatings(ctx context.Context, driverID string) (map[string]*models.Rating, error) {
	var ratings map[string]*models.Rating
	if err := s.client.NewRef("ratings/"+driverID).Get(ctx, &ratings); err != nil {
		return nil, fmt.Errorf("read ratings for %s: %w", driverID, err)
	}
	return ratings, nil
}
