package models

// ScaleTicket is a raw weigh-ticket upload stored under the driver's
// partition.
type ScaleTicket struct {
	URL        *string `json:"url"`
	FileName   *string `json:"fileName"`
	UploadedAt *int64  `json:"uploadedAt"`
	LoadID     *string `json:"loadId"`
}

// TicketSummary is the projected ticket in the driver detail view.
type TicketSummary struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	FileName   string `json:"fileName"`
	UploadedAt *int64 `json:"uploadedAt"`
	LoadID     string `json:"loadId"`
}

// Summarize projects the ticket under its record id.
func (t *ScaleTicket) Summarize(id string) TicketSummary {
	return TicketSummary{
		ID:         id,
		URL:        strOrEmpty(t.URL),
		FileName:   strOrEmpty(t.FileName),
		UploadedAt: t.UploadedAt,
		LoadID:     strOrEmpty(t.LoadID),
	}
}
