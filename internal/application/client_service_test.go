package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/bnema/vpnadm/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleClients() []domain.ClientSubscription {
	return []domain.ClientSubscription{
		{
			ID:        "c-1",
			Name:      "Alice Phone",
			Email:     "alice@example.com",
			Address:   "10.8.0.2",
			Enabled:   true,
			Online:    true,
			DataUsed:  2 * domain.GiB,
			DataLimit: domain.Some(int64(10 * domain.GiB)),
		},
		{
			ID:        "c-2",
			Name:      "Bob Laptop",
			Address:   "10.8.0.3",
			Enabled:   false,
			DataLimit: domain.None[int64](),
		},
		{
			ID:         "c-3",
			Name:       "Carol",
			Address:    "10.8.0.4",
			Enabled:    true,
			DataLimit:  domain.Some(int64(domain.GiB)),
			ExpiryDate: domain.Some(fixedNow.Add(-time.Hour)),
		},
	}
}

func TestClientServiceListResolvesAndFilters(t *testing.T) {
	api := mocks.NewMockClientAPI(t)
	service := NewClientService(api, domain.RoleAdmin, fixedClock(t))

	api.EXPECT().ListClients(mockAnyContext()).Return(sampleClients(), nil)

	views, err := service.List(context.Background(), ClientFilter{})
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, domain.StatusActive, views[0].Resolution.Primary)
	assert.True(t, views[0].Resolution.Has(domain.TagOnline))
	assert.InDelta(t, 0.2, views[0].UsageFraction, 1e-9)
	assert.Equal(t, domain.UsageTierNormal, views[0].Tier)
	assert.Equal(t, domain.StatusDisabled, views[1].Resolution.Primary)
	assert.Equal(t, domain.StatusExpired, views[2].Resolution.Primary)
	assert.Equal(t, fixedNow, views[0].ObservedAt)
}

func TestClientServiceListFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter ClientFilter
		want   []domain.ClientID
	}{
		{name: "search by name", filter: ClientFilter{Search: "bob"}, want: []domain.ClientID{"c-2"}},
		{name: "search by email", filter: ClientFilter{Search: "ALICE@"}, want: []domain.ClientID{"c-1"}},
		{name: "search by address", filter: ClientFilter{Search: "10.8.0.4"}, want: []domain.ClientID{"c-3"}},
		{name: "status", filter: ClientFilter{Status: domain.StatusDisabled}, want: []domain.ClientID{"c-2"}},
		{name: "tag", filter: ClientFilter{Tag: domain.TagOnline}, want: []domain.ClientID{"c-1"}},
		{name: "no match", filter: ClientFilter{Search: "zed"}, want: []domain.ClientID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := mocks.NewMockClientAPI(t)
			service := NewClientService(api, domain.RoleAdmin, fixedClock(t))
			api.EXPECT().ListClients(mockAnyContext()).Return(sampleClients(), nil)

			views, err := service.List(context.Background(), tt.filter)
			require.NoError(t, err)

			got := make([]domain.ClientID, 0, len(views))
			for _, view := range views {
				got = append(got, view.Client.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientServiceCreateSendsDraftAndRefetches(t *testing.T) {
	api := mocks.NewMockClientAPI(t)
	service := NewClientService(api, domain.RoleSuperAdmin, fixedClock(t))

	form := domain.ClientForm{
		Name:      "  Dave  ",
		DataLimit: domain.DataLimitField{Value: "10", Unit: domain.UnitGB},
	}
	created := domain.ClientSubscription{ID: "c-9", Name: "Dave", Enabled: true}
	refreshed := created
	refreshed.Address = "10.8.0.9"

	api.EXPECT().CreateClient(mockAnyContext(), domain.ClientDraft{
		Name:      "Dave",
		DataLimit: domain.Some(domain.ToBytes(10, domain.UnitGB)),
	}).Return(created, nil)
	api.EXPECT().ListClients(mockAnyContext()).Return([]domain.ClientSubscription{refreshed}, nil)

	view, err := service.Create(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "10.8.0.9", view.Client.Address)
}

func TestClientServiceCreateRejectsInvalidFormWithoutCallingAPI(t *testing.T) {
	api := mocks.NewMockClientAPI(t)
	service := NewClientService(api, domain.RoleAdmin, fixedClock(t))

	_, err := service.Create(context.Background(), domain.ClientForm{Name: ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidForm)
}

func TestClientServiceUpdateKeepsUntouchedLimit(t *testing.T) {
	api := mocks.NewMockClientAPI(t)
	service := NewClientService(api, domain.RoleAdmin, fixedClock(t))

	stored := domain.ClientSubscription{
		ID:        "c-1",
		Name:      "Alice",
		Enabled:   true,
		DataLimit: domain.Some(int64(domain.GiB + 5*domain.MiB)),
	}
	api.EXPECT().GetClient(mockAnyContext(), domain.ClientID("c-1")).Return(stored, nil)

	form, err := service.EditForm(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "1.00", form.DataLimit.Value)
	form.Note = "renewed"

	api.EXPECT().UpdateClient(mockAnyContext(), domain.ClientID("c-1"), domain.ClientDraft{
		Name:      "Alice",
		Note:      "renewed",
		DataLimit: stored.DataLimit,
	}).Return(stored, nil)
	api.EXPECT().ListClients(mockAnyContext()).Return([]domain.ClientSubscription{stored}, nil)

	_, err = service.Update(context.Background(), "c-1", form)
	require.NoError(t, err)
}

func TestClientServiceActionsRefetchAfterMutation(t *testing.T) {
	ctx := context.Background()
	id := domain.ClientID("c-1")

	tests := []struct {
		name   string
		expect func(api *mocks.MockClientAPI)
		run    func(service *ClientService) (ClientView, error)
	}{
		{
			name:   "disable",
			expect: func(api *mocks.MockClientAPI) { api.EXPECT().SetClientEnabled(mockAnyContext(), id, false).Return(nil) },
			run:    func(s *ClientService) (ClientView, error) { return s.SetEnabled(ctx, id, false) },
		},
		{
			name:   "reset data",
			expect: func(api *mocks.MockClientAPI) { api.EXPECT().ResetClientData(mockAnyContext(), id).Return(nil) },
			run:    func(s *ClientService) (ClientView, error) { return s.ResetData(ctx, id) },
		},
		{
			name:   "reset expiry default days",
			expect: func(api *mocks.MockClientAPI) { api.EXPECT().ResetClientExpiry(mockAnyContext(), id, 30).Return(nil) },
			run:    func(s *ClientService) (ClientView, error) { return s.ResetExpiry(ctx, id, 0) },
		},
		{
			name:   "reset expiry explicit days",
			expect: func(api *mocks.MockClientAPI) { api.EXPECT().ResetClientExpiry(mockAnyContext(), id, 90).Return(nil) },
			run:    func(s *ClientService) (ClientView, error) { return s.ResetExpiry(ctx, id, 90) },
		},
		{
			name:   "remove expiry",
			expect: func(api *mocks.MockClientAPI) { api.EXPECT().RemoveClientExpiry(mockAnyContext(), id).Return(nil) },
			run:    func(s *ClientService) (ClientView, error) { return s.RemoveExpiry(ctx, id) },
		},
		{
			name:   "reset timer",
			expect: func(api *mocks.MockClientAPI) { api.EXPECT().ResetClientTimer(mockAnyContext(), id).Return(nil) },
			run:    func(s *ClientService) (ClientView, error) { return s.ResetTimer(ctx, id) },
		},
		{
			name:   "full reset",
			expect: func(api *mocks.MockClientAPI) { api.EXPECT().FullResetClient(mockAnyContext(), id).Return(nil) },
			run:    func(s *ClientService) (ClientView, error) { return s.FullReset(ctx, id) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := mocks.NewMockClientAPI(t)
			service := NewClientService(api, domain.RoleAdmin, fixedClock(t))

			tt.expect(api)
			api.EXPECT().ListClients(mockAnyContext()).Return(sampleClients(), nil).Once()

			view, err := tt.run(service)
			require.NoError(t, err)
			assert.Equal(t, id, view.Client.ID)
		})
	}
}

func TestClientServiceMutationFailureSkipsRefetch(t *testing.T) {
	api := mocks.NewMockClientAPI(t)
	service := NewClientService(api, domain.RoleAdmin, fixedClock(t))

	apiErr := errors.New("Client not found")
	api.EXPECT().ResetClientData(mockAnyContext(), domain.ClientID("c-404")).Return(apiErr)

	_, err := service.ResetData(context.Background(), "c-404")
	require.Error(t, err)
	assert.ErrorIs(t, err, apiErr)
}

func TestClientServiceRefetchMissingClient(t *testing.T) {
	api := mocks.NewMockClientAPI(t)
	service := NewClientService(api, domain.RoleAdmin, fixedClock(t))

	api.EXPECT().ResetClientTimer(mockAnyContext(), domain.ClientID("c-7")).Return(nil)
	api.EXPECT().ListClients(mockAnyContext()).Return(sampleClients(), nil)

	_, err := service.ResetTimer(context.Background(), "c-7")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientServiceDeleteReturnsRemainingClients(t *testing.T) {
	api := mocks.NewMockClientAPI(t)
	service := NewClientService(api, domain.RoleAdmin, fixedClock(t))

	remaining := sampleClients()[1:]
	api.EXPECT().DeleteClient(mockAnyContext(), domain.ClientID("c-1")).Return(nil)
	api.EXPECT().ListClients(mockAnyContext()).Return(remaining, nil)

	views, err := service.Delete(context.Background(), "c-1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, domain.ClientID("c-2"), views[0].Client.ID)
}

func TestClientServiceViewerCannotMutate(t *testing.T) {
	api := mocks.NewMockClientAPI(t)
	service := NewClientService(api, domain.RoleViewer, fixedClock(t))
	ctx := context.Background()

	_, err := service.SetEnabled(ctx, "c-1", true)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = service.Delete(ctx, "c-1")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = service.Create(ctx, domain.ClientForm{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestClientServiceDownloadConfig(t *testing.T) {
	api := mocks.NewMockClientAPI(t)
	service := NewClientService(api, domain.RoleViewer, fixedClock(t))

	api.EXPECT().GetClient(mockAnyContext(), domain.ClientID("c-1")).Return(domain.ClientSubscription{ID: "c-1", Name: "Alice Phone/1"}, nil)
	api.EXPECT().ClientConfig(mockAnyContext(), domain.ClientID("c-1")).Return([]byte("[Interface]\n"), nil)

	file, err := service.DownloadConfig(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice_Phone_1.conf", file.Name)
	assert.Equal(t, "[Interface]\n", string(file.Content))
}

func TestConfigFileNameFallsBackToID(t *testing.T) {
	assert.Equal(t, "c-1.conf", ConfigFileName(domain.ClientSubscription{ID: "c-1", Name: "***"}))
	assert.Equal(t, "علی.conf", ConfigFileName(domain.ClientSubscription{ID: "c-2", Name: "علی"}))
}
