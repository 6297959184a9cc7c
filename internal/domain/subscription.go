package domain

import "time"

type ClientID string

// ClientSubscription is the backend's view of one provisioned VPN credential.
// It is a read-mostly projection: every mutation goes through the panel API and
// the record is fetched again afterwards.
type ClientSubscription struct {
	ID      ClientID `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Note    string   `json:"note"`
	Address string   `json:"address"`

	Enabled bool   `json:"is_enabled"`
	Online  bool   `json:"is_online"`
	Status  Status `json:"status"`

	DataUsed      int64           `json:"data_used"`
	DataLimit     Optional[int64] `json:"data_limit"`
	DataRemaining Optional[int64] `json:"data_remaining"`
	Download      int64           `json:"download"`
	Upload        int64           `json:"upload"`

	ExpiryDate          Optional[time.Time] `json:"expiry_date"`
	ExpiryDays          Optional[int]       `json:"expiry_days"`
	StartOnFirstConnect bool                `json:"start_on_first_connect"`
	FirstConnectionAt   Optional[time.Time] `json:"first_connection_at"`
	TimerStarted        bool                `json:"timer_started"`

	AutoRenew          bool            `json:"auto_renew"`
	AutoRenewDays      Optional[int]   `json:"auto_renew_days"`
	AutoRenewDataLimit Optional[int64] `json:"auto_renew_data_limit"`
	RenewCount         int             `json:"renew_count"`

	CreatedAt Optional[time.Time] `json:"created_at"`
}

// WaitingForFirstConnect reports whether the expiry countdown has not begun yet.
func (s ClientSubscription) WaitingForFirstConnect() bool {
	return s.StartOnFirstConnect && !s.TimerStarted
}

// Unlimited reports whether the subscription has no data quota.
func (s ClientSubscription) Unlimited() bool {
	return s.DataLimit.IsNone()
}
