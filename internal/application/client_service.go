package application

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/bnema/vpnadm/internal/ports"
)

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}._-]+`)

// ClientService runs the client screens against the panel. Every mutation is
// followed by a fresh GET /clients so callers never render stale local state.
type ClientService struct {
	api   ports.ClientAPI
	role  domain.Role
	clock ports.Clock
}

func NewClientService(api ports.ClientAPI, role domain.Role, clock ports.Clock) *ClientService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ClientService{api: api, role: role, clock: clock}
}

func (s *ClientService) List(ctx context.Context, filter ClientFilter) ([]ClientView, error) {
	clients, err := s.api.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	now := s.clock.Now()
	views := make([]ClientView, 0, len(clients))
	for _, client := range clients {
		view := NewClientView(client, now)
		if filter.Match(view) {
			views = append(views, view)
		}
	}

	return views, nil
}

func (s *ClientService) Get(ctx context.Context, id domain.ClientID) (ClientView, error) {
	client, err := s.api.GetClient(ctx, id)
	if err != nil {
		return ClientView{}, fmt.Errorf("get client %s: %w", id, err)
	}

	return NewClientView(client, s.clock.Now()), nil
}

// EditForm returns a form prefilled from the stored client.
func (s *ClientService) EditForm(ctx context.Context, id domain.ClientID) (domain.ClientForm, error) {
	client, err := s.api.GetClient(ctx, id)
	if err != nil {
		return domain.ClientForm{}, fmt.Errorf("get client %s: %w", id, err)
	}

	return domain.NewClientForm(client), nil
}

func (s *ClientService) Create(ctx context.Context, form domain.ClientForm) (ClientView, error) {
	if err := s.requireMutate(); err != nil {
		return ClientView{}, err
	}

	draft, err := form.Draft(ctx)
	if err != nil {
		return ClientView{}, err
	}

	created, err := s.api.CreateClient(ctx, draft)
	if err != nil {
		return ClientView{}, fmt.Errorf("create client: %w", err)
	}

	return s.refresh(ctx, created.ID)
}

func (s *ClientService) Update(ctx context.Context, id domain.ClientID, form domain.ClientForm) (ClientView, error) {
	if err := s.requireMutate(); err != nil {
		return ClientView{}, err
	}

	draft, err := form.Draft(ctx)
	if err != nil {
		return ClientView{}, err
	}

	if _, err := s.api.UpdateClient(ctx, id, draft); err != nil {
		return ClientView{}, fmt.Errorf("update client %s: %w", id, err)
	}

	return s.refresh(ctx, id)
}

func (s *ClientService) SetEnabled(ctx context.Context, id domain.ClientID, enabled bool) (ClientView, error) {
	return s.mutate(ctx, id, "toggle client", func() error {
		return s.api.SetClientEnabled(ctx, id, enabled)
	})
}

func (s *ClientService) ResetData(ctx context.Context, id domain.ClientID) (ClientView, error) {
	return s.mutate(ctx, id, "reset data", func() error {
		return s.api.ResetClientData(ctx, id)
	})
}

// ResetExpiry restarts the expiry window; days <= 0 uses DefaultExpiryResetDays.
func (s *ClientService) ResetExpiry(ctx context.Context, id domain.ClientID, days int) (ClientView, error) {
	if days <= 0 {
		days = DefaultExpiryResetDays
	}

	return s.mutate(ctx, id, "reset expiry", func() error {
		return s.api.ResetClientExpiry(ctx, id, days)
	})
}

func (s *ClientService) RemoveExpiry(ctx context.Context, id domain.ClientID) (ClientView, error) {
	return s.mutate(ctx, id, "remove expiry", func() error {
		return s.api.RemoveClientExpiry(ctx, id)
	})
}

func (s *ClientService) ResetTimer(ctx context.Context, id domain.ClientID) (ClientView, error) {
	return s.mutate(ctx, id, "reset timer", func() error {
		return s.api.ResetClientTimer(ctx, id)
	})
}

func (s *ClientService) FullReset(ctx context.Context, id domain.ClientID) (ClientView, error) {
	return s.mutate(ctx, id, "full reset", func() error {
		return s.api.FullResetClient(ctx, id)
	})
}

// Delete removes the client and returns the remaining list.
func (s *ClientService) Delete(ctx context.Context, id domain.ClientID) ([]ClientView, error) {
	if err := s.requireMutate(); err != nil {
		return nil, err
	}

	if err := s.api.DeleteClient(ctx, id); err != nil {
		return nil, fmt.Errorf("delete client %s: %w", id, err)
	}

	return s.List(ctx, ClientFilter{})
}

func (s *ClientService) DownloadConfig(ctx context.Context, id domain.ClientID) (ConfigFile, error) {
	client, err := s.api.GetClient(ctx, id)
	if err != nil {
		return ConfigFile{}, fmt.Errorf("get client %s: %w", id, err)
	}

	content, err := s.api.ClientConfig(ctx, id)
	if err != nil {
		return ConfigFile{}, fmt.Errorf("download config for %s: %w", id, err)
	}

	return ConfigFile{Name: ConfigFileName(client), Content: content}, nil
}

func (s *ClientService) QRCode(ctx context.Context, id domain.ClientID) ([]byte, error) {
	png, err := s.api.ClientQRCode(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("download qr code for %s: %w", id, err)
	}

	return png, nil
}

// ConfigFileName is "<name>.conf" with characters unsafe in file names replaced.
func ConfigFileName(client domain.ClientSubscription) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(client.Name, "_"), "._")
	if name == "" {
		name = string(client.ID)
	}
	return name + ".conf"
}

func (s *ClientService) mutate(ctx context.Context, id domain.ClientID, action string, call func() error) (ClientView, error) {
	if err := s.requireMutate(); err != nil {
		return ClientView{}, err
	}

	if err := call(); err != nil {
		return ClientView{}, fmt.Errorf("%s %s: %w", action, id, err)
	}

	return s.refresh(ctx, id)
}

func (s *ClientService) refresh(ctx context.Context, id domain.ClientID) (ClientView, error) {
	clients, err := s.api.ListClients(ctx)
	if err != nil {
		return ClientView{}, fmt.Errorf("refresh clients: %w", err)
	}

	for _, client := range clients {
		if client.ID == id {
			return NewClientView(client, s.clock.Now()), nil
		}
	}

	return ClientView{}, fmt.Errorf("refresh client %s: %w", id, domain.ErrClientNotFound)
}

func (s *ClientService) requireMutate() error {
	if s.role == "" || s.role.CanMutate() {
		return nil
	}
	return fmt.Errorf("%w: %s cannot change clients", domain.ErrPermissionDenied, s.role.Label())
}
