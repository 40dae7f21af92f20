package models

// Rating is a raw customer rating stored under the driver's partition.
// The rating value itself may be null.
type Rating struct {
	Rating       *float64 `json:"rating"` // 1..5 or null
	Comment      *string  `json:"comment"`
	CustomerName *string  `json:"customerName"`
	LoadID       *string  `json:"loadId"`
	CreatedAt    *int64   `json:"createdAt"`
}

// RatingSummary is the projected rating in the driver detail view. The
// rating value stays nullable; everything else is defaulted.
type RatingSummary struct {
	ID           string   `json:"id"`
	Rating       *float64 `json:"rating"`
	Comment      string   `json:"comment"`
	CustomerName string   `json:"customerName"`
	LoadID       string   `json:"loadId"`
	CreatedAt    *int64   `json:"createdAt"`
}

// Summarize projects the rating under its record id.
func (r *Rating) Summarize(id string) RatingSummary {
	return RatingSummary{
		ID:           id,
		Rating:       r.Rating,
		Comment:      strOrEmpty(r.Comment),
		CustomerName: strOrEmpty(r.CustomerName),
		LoadID:       strOrEmpty(r.LoadID),
		CreatedAt:    r.CreatedAt,
	}
}

// Value returns the numeric rating, coercing a null rating to 0. A
// null-rated entry still counts toward the average's denominator.
func (r *Rating) Value() float64 {
	return numOrZero(r.Rating)
}
