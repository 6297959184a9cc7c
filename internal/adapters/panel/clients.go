package panel

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bnema/vpnadm/internal/domain"
)

type clientDTO struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Note    *string `json:"note"`
	Address string  `json:"address"`

	IsEnabled *bool  `json:"is_enabled"`
	IsOnline  bool   `json:"is_online"`
	Status    string `json:"status"`

	DataUsed      float64  `json:"data_used"`
	DataLimit     *float64 `json:"data_limit"`
	DataRemaining *float64 `json:"data_remaining"`
	Download      float64  `json:"download"`
	Upload        float64  `json:"upload"`

	ExpiryDate          timestamp `json:"expiry_date"`
	ExpiryDays          *int      `json:"expiry_days"`
	StartOnFirstConnect bool      `json:"start_on_first_connect"`
	FirstConnectionAt   timestamp `json:"first_connection_at"`
	TimerStarted        bool      `json:"timer_started"`

	AutoRenew          bool     `json:"auto_renew"`
	AutoRenewDays      *int     `json:"auto_renew_days"`
	AutoRenewDataLimit *float64 `json:"auto_renew_data_limit"`
	RenewCount         int      `json:"renew_count"`

	CreatedAt timestamp `json:"created_at"`
}

func (dto clientDTO) toDomain() domain.ClientSubscription {
	status, err := domain.ParseStatus(dto.Status)
	if err != nil {
		status = ""
	}

	used := optionalBytes(&dto.DataUsed).OrElse(0)
	if used < 0 {
		used = 0
	}

	return domain.ClientSubscription{
		ID:                  domain.ClientID(dto.ID),
		Name:                dto.Name,
		Email:               derefString(dto.Email),
		Note:                derefString(dto.Note),
		Address:             dto.Address,
		Enabled:             dto.IsEnabled == nil || *dto.IsEnabled,
		Online:              dto.IsOnline,
		Status:              status,
		DataUsed:            used,
		DataLimit:           optionalBytes(dto.DataLimit),
		DataRemaining:       optionalBytes(dto.DataRemaining),
		Download:            optionalBytes(&dto.Download).OrElse(0),
		Upload:              optionalBytes(&dto.Upload).OrElse(0),
		ExpiryDate:          dto.ExpiryDate.optional(),
		ExpiryDays:          optionalInt(dto.ExpiryDays),
		StartOnFirstConnect: dto.StartOnFirstConnect,
		FirstConnectionAt:   dto.FirstConnectionAt.optional(),
		TimerStarted:        dto.TimerStarted,
		AutoRenew:           dto.AutoRenew,
		AutoRenewDays:       optionalInt(dto.AutoRenewDays),
		AutoRenewDataLimit:  optionalBytes(dto.AutoRenewDataLimit),
		RenewCount:          dto.RenewCount,
		CreatedAt:           dto.CreatedAt.optional(),
	}
}

type clientRequest struct {
	Name                string                 `json:"name"`
	Email               *string                `json:"email"`
	Note                *string                `json:"note"`
	DataLimit           domain.Optional[int64] `json:"data_limit"`
	ExpiryDate          *string                `json:"expiry_date"`
	StartOnFirstConnect bool                   `json:"start_on_first_connect"`
	ExpiryDays          domain.Optional[int]   `json:"expiry_days"`
	AutoRenew           bool                   `json:"auto_renew"`
	AutoRenewDays       domain.Optional[int]   `json:"auto_renew_days"`
	AutoRenewDataLimit  domain.Optional[int64] `json:"auto_renew_data_limit"`
}

func newClientRequest(draft domain.ClientDraft) clientRequest {
	req := clientRequest{
		Name:                draft.Name,
		Email:               nullableString(draft.Email),
		Note:                nullableString(draft.Note),
		DataLimit:           draft.DataLimit,
		StartOnFirstConnect: draft.StartOnFirstConnect,
		ExpiryDays:          draft.ExpiryDays,
		AutoRenew:           draft.AutoRenew,
		AutoRenewDays:       draft.AutoRenewDays,
		AutoRenewDataLimit:  draft.AutoRenewDataLimit,
	}
	if expiry, ok := draft.ExpiryDate.Get(); ok {
		formatted := formatTimestamp(expiry)
		req.ExpiryDate = &formatted
	}
	return req
}

type enabledRequest struct {
	IsEnabled bool `json:"is_enabled"`
}

func (c *Client) ListClients(ctx context.Context) ([]domain.ClientSubscription, error) {
	var dtos []clientDTO
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/clients"}, &dtos); err != nil {
		return nil, err
	}

	clients := make([]domain.ClientSubscription, 0, len(dtos))
	for _, dto := range dtos {
		clients = append(clients, dto.toDomain())
	}
	return clients, nil
}

func (c *Client) GetClient(ctx context.Context, id domain.ClientID) (domain.ClientSubscription, error) {
	var dto clientDTO
	err := c.doJSON(ctx, request{
		method:   http.MethodGet,
		path:     pathf("/clients/%s", id),
		notFound: domain.ErrClientNotFound,
	}, &dto)
	if err != nil {
		return domain.ClientSubscription{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) CreateClient(ctx context.Context, draft domain.ClientDraft) (domain.ClientSubscription, error) {
	var dto clientDTO
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/clients",
		body:   newClientRequest(draft),
	}, &dto)
	if err != nil {
		return domain.ClientSubscription{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) UpdateClient(ctx context.Context, id domain.ClientID, draft domain.ClientDraft) (domain.ClientSubscription, error) {
	var dto clientDTO
	err := c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     pathf("/clients/%s", id),
		body:     newClientRequest(draft),
		notFound: domain.ErrClientNotFound,
	}, &dto)
	if err != nil {
		return domain.ClientSubscription{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) SetClientEnabled(ctx context.Context, id domain.ClientID, enabled bool) error {
	return c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     pathf("/clients/%s", id),
		body:     enabledRequest{IsEnabled: enabled},
		notFound: domain.ErrClientNotFound,
	}, nil)
}

func (c *Client) DeleteClient(ctx context.Context, id domain.ClientID) error {
	return c.doJSON(ctx, request{
		method:   http.MethodDelete,
		path:     pathf("/clients/%s", id),
		notFound: domain.ErrClientNotFound,
	}, nil)
}

func (c *Client) ResetClientData(ctx context.Context, id domain.ClientID) error {
	return c.clientAction(ctx, id, "reset-data", nil)
}

func (c *Client) ResetClientExpiry(ctx context.Context, id domain.ClientID, days int) error {
	return c.clientAction(ctx, id, "reset-expiry", url.Values{"days": {strconv.Itoa(days)}})
}

func (c *Client) RemoveClientExpiry(ctx context.Context, id domain.ClientID) error {
	return c.clientAction(ctx, id, "remove-expiry", nil)
}

func (c *Client) ResetClientTimer(ctx context.Context, id domain.ClientID) error {
	return c.clientAction(ctx, id, "reset-timer", nil)
}

func (c *Client) FullResetClient(ctx context.Context, id domain.ClientID) error {
	return c.clientAction(ctx, id, "full-reset", nil)
}

func (c *Client) clientAction(ctx context.Context, id domain.ClientID, action string, query url.Values) error {
	return c.doJSON(ctx, request{
		method:   http.MethodPost,
		path:     pathf("/clients/%s/", id) + action,
		query:    query,
		notFound: domain.ErrClientNotFound,
	}, nil)
}

func (c *Client) ClientConfig(ctx context.Context, id domain.ClientID) ([]byte, error) {
	resp, err := c.send(ctx, request{
		method:   http.MethodGet,
		path:     pathf("/clients/%s/config", id),
		notFound: domain.ErrClientNotFound,
	})
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

func (c *Client) ClientQRCode(ctx context.Context, id domain.ClientID) ([]byte, error) {
	resp, err := c.send(ctx, request{
		method:   http.MethodGet,
		path:     pathf("/clients/%s/qrcode", id),
		notFound: domain.ErrClientNotFound,
	})
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

// Subscription reads the public status page of a client. It sends no token.
func (c *Client) Subscription(ctx context.Context, id domain.ClientID) (domain.ClientSubscription, error) {
	var dto clientDTO
	err := c.doJSON(ctx, request{
		method:   http.MethodGet,
		path:     pathf("/sub/%s", id),
		public:   true,
		notFound: domain.ErrClientNotFound,
	}, &dto)
	if err != nil {
		return domain.ClientSubscription{}, err
	}
	if dto.ID == "" {
		dto.ID = string(id)
	}
	return dto.toDomain(), nil
}
