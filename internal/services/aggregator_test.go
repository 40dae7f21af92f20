package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yardline/driver-admin-backend/internal/models"
	"github.com/yardline/driver-admin-backend/internal/services"
	"github.com/yardline/driver-admin-backend/internal/storage"
)

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

// countingRecordStore counts reads so tests can assert the record store
// was never touched.
type countingRecordStore struct {
	inner storage.RecordStore
	calls int
}

func (c *countingRecordStore) GetAllDeliveries(ctx context.Context) (map[string]*models.Delivery, error) {
	c.calls++
	return c.inner.GetAllDeliveries(ctx)
}

func (c *countingRecordStore) GetScaleTickets(ctx context.Context, driverID string) (map[string]*models.ScaleTicket, error) {
	c.calls++
	return c.inner.GetScaleTickets(ctx, driverID)
}

func (c *countingRecordStore) GetRatings(ctx context.Context, driverID string) (map[string]*models.Rating, error) {
	c.calls++
	return c.inner.GetRatings(ctx, driverID)
}

// failingRecordStore fails every read.
type failingRecordStore struct {
	err error
}

func (f *failingRecordStore) GetAllDeliveries(ctx context.Context) (map[string]*models.Delivery, error) {
	return nil, f.err
}

func (f *failingRecordStore) GetScaleTickets(ctx context.Context, driverID string) (map[string]*models.ScaleTicket, error) {
	return nil, f.err
}

func (f *failingRecordStore) GetRatings(ctx context.Context, driverID string) (map[string]*models.Rating, error) {
	return nil, f.err
}

func seedDriver(identities *storage.MemoryIdentityStore, id, email string) {
	identities.PutDriver(&models.DriverAccount{ID: id, Email: email})
}

func TestDriverDetailsUnknownDriver(t *testing.T) {
	identities := storage.NewMemoryIdentityStore()
	records := &countingRecordStore{inner: storage.NewMemoryRecordStore()}
	agg := services.NewAggregatorService(identities, records)

	summary, err := agg.DriverDetails(context.Background(), "missing")

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, 0, records.calls, "record store must not be touched when identity is absent")
}

func TestDriverDetailsEmptyCollections(t *testing.T) {
	identities := storage.NewMemoryIdentityStore()
	seedDriver(identities, "drv1", "driver@example.com")
	agg := services.NewAggregatorService(identities, storage.NewMemoryRecordStore())

	summary, err := agg.DriverDetails(context.Background(), "drv1")

	require.NoError(t, err)
	assert.Equal(t, "drv1", summary.Identity.ID)
	assert.Empty(t, summary.Loads)
	assert.Empty(t, summary.Tickets)
	assert.Empty(t, summary.Ratings)
	assert.Equal(t, 0, summary.Stats.TotalLoads)
	assert.Equal(t, 0, summary.Stats.TotalTickets)
	assert.Equal(t, 0, summary.Stats.TotalRatings)
	assert.Nil(t, summary.Stats.AvgRating)
}

func TestDriverDetailsEmailMatchCaseInsensitive(t *testing.T) {
	identities := storage.NewMemoryIdentityStore()
	seedDriver(identities, "drv1", "A@B.com")

	records := storage.NewMemoryRecordStore()
	records.PutDelivery("del1", &models.Delivery{
		Status: "delivered",
		Details: &models.DeliveryDetails{
			AssignedDriverEmail: strPtr("a@b.com"),
		},
	})
	records.PutDelivery("del2", &models.Delivery{
		Status: "delivered",
		Details: &models.DeliveryDetails{
			AssignedDriverEmail: strPtr("someone@else.com"),
		},
	})

	agg := services.NewAggregatorService(identities, records)
	summary, err := agg.DriverDetails(context.Background(), "drv1")

	require.NoError(t, err)
	require.Len(t, summary.Loads, 1)
	assert.Equal(t, "del1", summary.Loads[0].ID)
	assert.Equal(t, 1, summary.Stats.TotalLoads)
}

func TestDriverDetailsDoubleMatchIncludedOnce(t *testing.T) {
	identities := storage.NewMemoryIdentityStore()
	seedDriver(identities, "drv1", "driver@example.com")

	records := storage.NewMemoryRecordStore()
	records.PutDelivery("del1", &models.Delivery{
		Status: "assigned",
		Details: &models.DeliveryDetails{
			AssignedDriverEmail: strPtr("driver@example.com"),
			AssignedDriverID:    strPtr("drv1"),
		},
	})

	agg := services.NewAggregatorService(identities, records)
	summary, err := agg.DriverDetails(context.Background(), "drv1")

	require.NoError(t, err)
	assert.Len(t, summary.Loads, 1)
}

func TestDriverDetailsIDMatchWithoutEmail(t *testing.T) {
	identities := storage.NewMemoryIdentityStore()
	// Account with no email at all: only the id predicate can match.
	seedDriver(identities, "drv1", "")

	records := storage.NewMemoryRecordStore()
	records.PutDelivery("del1", &models.Delivery{
		Details: &models.DeliveryDetails{AssignedDriverID: strPtr("drv1")},
	})
	records.PutDelivery("del2", &models.Delivery{
		Details: &models.DeliveryDetails{},
	})
	records.PutDelivery("del3", &models.Delivery{})

	agg := services.NewAggregatorService(identities, records)
	summary, err := agg.DriverDetails(context.Background(), "drv1")

	require.NoError(t, err)
	require.Len(t, summary.Loads, 1)
	assert.Equal(t, "del1", summary.Loads[0].ID)
}

func TestDriverDetailsAverageRating(t *testing.T) {
	identities := storage.NewMemoryIdentityStore()
	seedDriver(identities, "drv1", "driver@example.com")

	records := storage.NewMemoryRecordStore()
	records.PutRating("drv1", "r1", &models.Rating{Rating: f64Ptr(5)})
	records.PutRating("drv1", "r2", &models.Rating{Rating: f64Ptr(3)})
	// Null rating: 0 in the sum, still counts in the denominator.
	records.PutRating("drv1", "r3", &models.Rating{Comment: strPtr("no stars given")})

	agg := services.NewAggregatorService(identities, records)
	summary, err := agg.DriverDetails(context.Background(), "drv1")

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Stats.TotalRatings)
	require.NotNil(t, summary.Stats.AvgRating)
	assert.InDelta(t, 8.0/3.0, *summary.Stats.AvgRating, 0.0001)
}

func TestDriverDetailsProjectionDefaults(t *testing.T) {
	identities := storage.NewMemoryIdentityStore()
	seedDriver(identities, "drv1", "driver@example.com")

	records := storage.NewMemoryRecordStore()
	records.PutDelivery("del1", &models.Delivery{
		Status: "pending",
		Details: &models.DeliveryDetails{
			AssignedDriverID: strPtr("drv1"),
			Revenue:          f64Ptr(420.5),
		},
	})
	records.PutScaleTicket("drv1", "t1", &models.ScaleTicket{FileName: strPtr("ticket.pdf")})
	records.PutRating("drv1", "r1", &models.Rating{Rating: f64Ptr(4)})

	agg := services.NewAggregatorService(identities, records)
	summary, err := agg.DriverDetails(context.Background(), "drv1")

	require.NoError(t, err)
	require.Len(t, summary.Loads, 1)
	load := summary.Loads[0]
	assert.Equal(t, "", load.CustomerName)
	assert.Equal(t, "", load.Address)
	assert.Equal(t, "", load.Items)
	assert.Equal(t, 0.0, load.YardsDelivered)
	assert.Equal(t, 420.5, load.Revenue)
	assert.Equal(t, 0.0, load.Profit)
	assert.Nil(t, load.CreatedAt)

	require.Len(t, summary.Tickets, 1)
	assert.Equal(t, "ticket.pdf", summary.Tickets[0].FileName)
	assert.Equal(t, "", summary.Tickets[0].URL)

	require.Len(t, summary.Ratings, 1)
	assert.Equal(t, "", summary.Ratings[0].Comment)
}

func TestDriverDetailsStoreFailure(t *testing.T) {
	identities := storage.NewMemoryIdentityStore()
	seedDriver(identities, "drv1", "driver@example.com")

	storeErr := errors.New("permission denied")
	agg := services.NewAggregatorService(identities, &failingRecordStore{err: storeErr})

	summary, err := agg.DriverDetails(context.Background(), "drv1")

	assert.Nil(t, summary, "no partial results on store failure")
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
}
