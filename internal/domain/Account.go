package domain

import "time"

// Account statuses mirrored from the upstream customer resource.
const (
	AccountStatusEnabled = "ENABLED"
	AccountStatusPaused  = "PAUSED"
	AccountStatusRemoved = "REMOVED"
)

// Account is a Google Ads customer account synced into the store.
// Accounts are upserted on google_ads_id and never hard-deleted.
type Account struct {
	ID          int64     `json:"id"`
	GoogleAdsID string    `json:"google_ads_id"`
	Name        string    `json:"name"`
	Currency    string    `json:"currency"`
	TimeZone    string    `json:"time_zone"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SyncAccountsResponse struct {
	Success  bool       `json:"success"`
	Accounts []*Account `json:"accounts"`
	Message  string     `json:"message"`
}
