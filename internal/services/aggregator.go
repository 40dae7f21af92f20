package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yardline/driver-admin-backend/internal/models"
	"github.com/yardline/driver-admin-backend/internal/storage"
)

// AggregatorService builds the driver detail view by joining the
// identity record with the delivery, ticket and rating collections.
type AggregatorService struct {
	identities storage.IdentityStore
	records    storage.RecordStore
}

// NewAggregatorService creates a new aggregator service
func NewAggregatorService(identities storage.IdentityStore, records storage.RecordStore) *AggregatorService {
	return &AggregatorService{
		identities: identities,
		records:    records,
	}
}

// DriverDetails aggregates everything known about one driver. The
// identity record is the anchor: if it is absent the whole operation is
// storage.ErrNotFound and no record collection is touched. Empty
// collections are normal; any store failure aborts with no partial
// result. The three record reads have no ordering dependency and run
// concurrently.
func (s *AggregatorService) DriverDetails(ctx context.Context, driverID string) (*models.DriverSummary, error) {
	identity, err := s.identities.GetDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	driverEmail := strings.ToLower(identity.Email)

	var (
		deliveries map[string]*models.Delivery
		tickets    map[string]*models.ScaleTicket
		ratings    map[string]*models.Rating
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deliveries, err = s.records.GetAllDeliveries(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tickets, err = s.records.GetScaleTickets(gctx, driverID)
		return err
	})
	g.Go(func() error {
		var err error
		ratings, err = s.records.GetRatings(gctx, driverID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("aggregate driver %s: %w", driverID, err)
	}

	// Deliveries carry their assignment as an email or an account id,
	// not consistently; a record matching both ways is still one load.
	loads := make([]models.LoadSummary, 0)
	for id, d := range deliveries {
		if d == nil {
			continue
		}
		if d.MatchesDriver(driverID, driverEmail) {
			loads = append(loads, d.Summarize(id))
		}
	}

	ticketSummaries := make([]models.TicketSummary, 0, len(tickets))
	for id, t := range tickets {
		if t == nil {
			continue
		}
		ticketSummaries = append(ticketSummaries, t.Summarize(id))
	}

	ratingSummaries := make([]models.RatingSummary, 0, len(ratings))
	var ratingSum float64
	for id, r := range ratings {
		if r == nil {
			continue
		}
		ratingSummaries = append(ratingSummaries, r.Summarize(id))
		ratingSum += r.Value()
	}

	// Map reads are unordered; sort by record id for stable responses.
	sort.Slice(loads, func(i, j int) bool { return loads[i].ID < loads[j].ID })
	sort.Slice(ticketSummaries, func(i, j int) bool { return ticketSummaries[i].ID < ticketSummaries[j].ID })
	sort.Slice(ratingSummaries, func(i, j int) bool { return ratingSummaries[i].ID < ratingSummaries[j].ID })

	stats := models.DriverStats{
		TotalLoads:   len(loads),
		TotalTickets: len(ticketSummaries),
		TotalRatings: len(ratingSummaries),
	}
	if len(ratingSummaries) > 0 {
		avg := ratingSum / float64(len(ratingSummaries))
		stats.AvgRating = &avg
	}

	return &models.DriverSummary{
		Identity: identity,
		Loads:    loads,
		Tickets:  ticketSummaries,
		Ratings:  ratingSummaries,
		Stats:    stats,
	}, nil
}
