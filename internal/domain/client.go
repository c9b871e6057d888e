package domain

// Client represents one training client of the coach.
//
// ClientID and CreatedAt are minted by the service layer when the client is
// created and never change afterwards; an update patch cannot override them.
type Client struct {
	ClientID  string `json:"clientId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"` // RFC 3339 timestamp
}

// ClientPatch carries a partial client update. Nil fields keep the stored
// value; ClientID and CreatedAt are intentionally absent because they are
// immutable.
type ClientPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}
