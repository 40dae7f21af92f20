package models

import "strings"

// Delivery is a raw delivery record as stored in the external database.
// The writing application omits fields freely, so every optional field
// is a pointer; JSON tags match the store's camelCase keys.
type Delivery struct {
	Status    string           `json:"status"` // "pending", "assigned", "delivered", ...
	Details   *DeliveryDetails `json:"details"`
	CreatedAt *int64           `json:"createdAt"`
}

// DeliveryDetails carries the denormalized assignment. A delivery may
// reference its driver by email, by account id, both, or neither.
type DeliveryDetails struct {
	CustomerName        *string  `json:"customerName"`
	Address             *string  `json:"address"`
	Items               *string  `json:"items"`
	YardsDelivered      *float64 `json:"yardsDelivered"`
	Revenue             *float64 `json:"revenue"`
	Profit              *float64 `json:"profit"`
	AssignedDriverEmail *string  `json:"assignedDriverEmail"`
	AssignedDriverID    *string  `json:"assignedDriverId"`
}

// LoadSummary is the projection of a matched delivery into the driver
// detail view, with optional fields defaulted.
type LoadSummary struct {
	ID             string  `json:"id"`
	Status         string  `json:"status"`
	CustomerName   string  `json:"customerName"`
	Address        string  `json:"address"`
	Items          string  `json:"items"`
	YardsDelivered float64 `json:"yardsDelivered"`
	Revenue        float64 `json:"revenue"`
	Profit         float64 `json:"profit"`
	CreatedAt      *int64  `json:"createdAt"`
}

// MatchesDriver reports whether the delivery is assigned to the driver,
// either by account id or by email (case-insensitive). emailLower must
// already be lowercased; missing fields never match.
func (d *Delivery) MatchesDriver(driverID, emailLower string) bool {
	if d.Details == nil {
		return false
	}
	if d.Details.AssignedDriverID != nil && *d.Details.AssignedDriverID == driverID {
		return true
	}
	if emailLower != "" && d.Details.AssignedDriverEmail != nil &&
		strings.ToLower(*d.Details.AssignedDriverEmail) == emailLower {
		return true
	}
	return false
}

// Summarize projects the delivery under its record id, defaulting
// absent fields. Defaulting happens here and nowhere else.
func (d *Delivery) Summarize(id string) LoadSummary {
	s := LoadSummary{
		ID:        id,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
	if d.Details != nil {
		s.CustomerName = strOrEmpty(d.Details.CustomerName)
		s.Address = strOrEmpty(d.Details.Address)
		s.Items = strOrEmpty(d.Details.Items)
		s.YardsDelivered = numOrZero(d.Details.YardsDelivered)
		s.Revenue = numOrZero(d.Details.Revenue)
		s.Profit = numOrZero(d.Details.Profit)
	}
	return s
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func numOrZero(n *float64) float64 {
	if n == nil {
		return 0
	}
	return *n
}
