package storage

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/yardline/driver-admin-backend/internal/models"
)

// MemoryIdentityStore holds driver accounts in memory for testing
type MemoryIdentityStore struct {
	mu       sync.RWMutex
	accounts map[string]*models.DriverAccount
	order    []string // listing order; pagination tokens index into this
}

// NewMemoryIdentityStore creates a new in-memory identity store
func NewMemoryIdentityStore() *MemoryIdentityStore {
	return &MemoryIdentityStore{
		accounts: make(map[string]*models.DriverAccount),
	}
}

// PutDriver inserts or replaces an account (seed helper for tests)
func (m *MemoryIdentityStore) PutDriver(acct *models.DriverAccount) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[acct.ID]; !exists {
		m.order = append(m.order, acct.ID)
	}
	m.accounts[acct.ID] = acct
}

func (m *MemoryIdentityStore) GetDriver(ctx context.Context, uid string) (*models.DriverAccount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	acct, exists := m.accounts[uid]
	if !exists {
		return nil, ErrNotFound
	}
	return acct, nil
}

func (m *MemoryIdentityStore) ListDrivers(ctx context.Context, pageSize int, pageToken string) ([]*models.DriverAccount, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	start := 0
	if pageToken != "" {
		var err error
		start, err = strconv.Atoi(pageToken)
		if err != nil || start < 0 || start > len(m.order) {
			return nil, "", fmt.Errorf("invalid page token %q", pageToken)
		}
	}

	end := start + pageSize
	if end > len(m.order) {
		end = len(m.order)
	}

	page := make([]*models.DriverAccount, 0, end-start)
	for _, id := range m.order[start:end] {
		page = append(page, m.accounts[id])
	}

	next := ""
	if end < len(m.order) {
		next = strconv.Itoa(end)
	}
	return page, next, nil
}

func (m *MemoryIdentityStore) DeleteDriver(ctx context.Context, uid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[uid]; !exists {
		return ErrNotFound
	}
	delete(m.accounts, uid)
	for i, id := range m.order {
		if id == uid {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// MemoryRecordStore holds delivery, ticket and rating records in memory
// for testing
type MemoryRecordStore struct {
	mu         sync.RWMutex
	deliveries map[string]*models.Delivery
	tickets    map[string]map[string]*models.ScaleTicket // driver id -> ticket id -> ticket
	ratings    map[string]map[string]*models.Rating      // driver id -> rating id -> rating
}

// NewMemoryRecordStore creates a new in-memory record store
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		deliveries: make(map[string]*models.Delivery),
		tickets:    make(map[string]map[string]*models.ScaleTicket),
		ratings:    make(map[string]map[string]*models.Rating),
	}
}

// PutDelivery inserts or replaces a delivery record (seed helper)
func (m *MemoryRecordStore) PutDelivery(id string, d *models.Delivery) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deliveries[id] = d
}

// PutScaleTicket inserts a ticket under the driver's partition (seed helper)
func (m *MemoryRecordStore) PutScaleTicket(driverID, id string, t *models.ScaleTicket) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tickets[driverID] == nil {
		m.tickets[driverID] = make(map[string]*models.ScaleTicket)
	}
	m.tickets[driverID][id] = t
}

// PutRating inserts a rating under the driver's partition (seed helper)
func (m *MemoryRecordStore) PutRating(driverID, id string, r *models.Rating) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ratings[driverID] == nil {
		m.ratings[driverID] = make(map[string]*models.Rating)
	}
	m.ratings[driverID][id] = r
}

func (m *MemoryRecordStore) GetAllDeliveries(ctx context.Context) (map[string]*models.Delivery, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]*models.Delivery, len(m.deliveries))
	for id, d := range m.deliveries {
		out[id] = d
	}
	return out, nil
}

func (m *MemoryRecordStore) GetScaleTickets(ctx context.Context, driverID string) (map[string]*models.ScaleTicket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]*models.ScaleTicket, len(m.tickets[driverID]))
	for id, t := range m.tickets[driverID] {
		out[id] = t
	}
	return out, nil
}

func (m *MemoryRecordStore) GetRatings(ctx context.Context, driverID string) (map[string]*models.Rating, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]*models.Rating, len(m.ratings[driverID]))
	for id, r := range m.ratings[driverID] {
		out[id] = r
	}
	return out, nil
}
