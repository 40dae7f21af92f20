package models

// DriverStats are the derived counts for one driver. AvgRating is nil
// when the driver has no ratings.
type DriverStats struct {
	TotalLoads   int      `json:"totalLoads"`
	TotalTickets int      `json:"totalTickets"`
	TotalRatings int      `json:"totalRatings"`
	AvgRating    *float64 `json:"avgRating"`
}

// DriverSummary is the full admin detail view for one driver. It is
// assembled fresh per request and never persisted.
type DriverSummary struct {
	Identity *DriverAccount  `json:"identity"`
	Loads    []LoadSummary   `json:"loads"`
	Tickets  []TicketSummary `json:"tickets"`
	Ratings  []RatingSummary `json:"ratings"`
	Stats    DriverStats     `json:"stats"`
}
