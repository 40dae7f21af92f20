package models

// DriverAccount is a driver's login identity as mirrored from the
// identity provider. DisplayName and PhoneNumber stay nil when the
// account has none set; callers distinguish "no name set" from an
// empty name.
type DriverAccount struct {
	ID           string  `json:"id"`
	Email        string  `json:"email,omitempty"`
	DisplayName  *string `json:"displayName"`
	PhoneNumber  *string `json:"phoneNumber"`
	Disabled     bool    `json:"disabled"`
	CreatedAt    int64   `json:"createdAt"`    // unix millis
	LastSignInAt *int64  `json:"lastSignInAt"` // unix millis, nil if never signed in
}
