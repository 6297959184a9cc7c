package application

import (
	"context"
	"math"
	"testing"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/bnema/vpnadm/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validPlanForm() domain.PlanForm {
	form := domain.NewPlanForm()
	form.Name = "Monthly 50GB"
	form.Price = 150000
	form.DurationDays = 30
	form.TrafficGB = domain.Some(50.0)
	return form
}

func TestCatalogMutationsNeedMutateRole(t *testing.T) {
	ctx := context.Background()

	for _, role := range []domain.Role{domain.RoleViewer, domain.RoleSupport} {
		// the mock fails the test on any call
		service := NewCatalogService(mocks.NewMockCatalogAPI(t), role, fixedClock(t))

		_, err := service.CreatePlan(ctx, validPlanForm())
		assert.ErrorIs(t, err, domain.ErrPermissionDenied, role)
		_, err = service.UpdatePlan(ctx, "p-1", validPlanForm())
		assert.ErrorIs(t, err, domain.ErrPermissionDenied, role)
		assert.ErrorIs(t, service.DeletePlan(ctx, "p-1"), domain.ErrPermissionDenied, role)

		_, err = service.CreateServer(ctx, domain.NewServerForm())
		assert.ErrorIs(t, err, domain.ErrPermissionDenied, role)
		_, err = service.TestServer(ctx, "s-1")
		assert.ErrorIs(t, err, domain.ErrPermissionDenied, role)
		assert.ErrorIs(t, service.DeleteServer(ctx, "s-1"), domain.ErrPermissionDenied, role)

		_, err = service.CreateDiscountCode(ctx, domain.NewDiscountCodeForm())
		assert.ErrorIs(t, err, domain.ErrPermissionDenied, role)
		_, err = service.CreateDepartment(ctx, domain.NewDepartmentForm())
		assert.ErrorIs(t, err, domain.ErrPermissionDenied, role)
		_, err = service.UpdateReseller(ctx, "r-1", domain.NewResellerForm())
		assert.ErrorIs(t, err, domain.ErrPermissionDenied, role)
		assert.ErrorIs(t, service.SetResellerBalance(ctx, "r-1", 10), domain.ErrPermissionDenied, role)
		assert.ErrorIs(t, service.DeleteReseller(ctx, "r-1"), domain.ErrPermissionDenied, role)
	}
}

func TestCatalogServiceCreatePlanValidatesBeforeSending(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	service := NewCatalogService(api, domain.RoleAdmin, fixedClock(t))
	ctx := context.Background()

	_, err := service.CreatePlan(ctx, domain.NewPlanForm())
	require.ErrorIs(t, err, domain.ErrInvalidForm)

	form := validPlanForm()
	api.EXPECT().CreatePlan(mockAnyContext(), form).Return(domain.Plan{ID: "p-9", Name: form.Name}, nil)

	plan, err := service.CreatePlan(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "p-9", plan.ID)
}

func TestCatalogServiceUpdateAndDeleteWrapPanelErrors(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	service := NewCatalogService(api, domain.RoleSuperAdmin, fixedClock(t))
	ctx := context.Background()

	form := validPlanForm()
	api.EXPECT().UpdatePlan(mockAnyContext(), "p-1", form).Return(domain.Plan{ID: "p-1"}, nil)
	api.EXPECT().DeleteServer(mockAnyContext(), "s-404").Return(domain.ErrNotFound)

	_, err := service.UpdatePlan(ctx, "p-1", form)
	require.NoError(t, err)

	err = service.DeleteServer(ctx, "s-404")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "delete server s-404: not found")
}

func TestCatalogServiceCreateServerAlwaysNeedsCredentials(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	service := NewCatalogService(api, domain.RoleAdmin, fixedClock(t))
	ctx := context.Background()

	form := domain.NewServerForm()
	form.Name = "fra-1"
	form.PanelURL = "https://fra-1.example.com:2053"
	form.KeepCredentials = true

	_, err := service.CreateServer(ctx, form)
	require.ErrorIs(t, err, domain.ErrInvalidForm)
	assert.ErrorContains(t, err, "PanelPassword")

	form.PanelUsername = "admin"
	form.PanelPassword = "secret"
	api.EXPECT().CreateServer(mockAnyContext(), mock.MatchedBy(func(f domain.ServerForm) bool {
		return !f.KeepCredentials && f.PanelPassword == "secret"
	})).Return(domain.Server{ID: "s-3", Name: "fra-1"}, nil)

	server, err := service.CreateServer(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "s-3", server.ID)
}

func TestCatalogServiceTestServerReturnsFailedResult(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	service := NewCatalogService(api, domain.RoleAdmin, fixedClock(t))

	api.EXPECT().TestServer(mockAnyContext(), "s-1").
		Return(domain.ServerTestResult{Status: "failed", Message: "timeout"}, nil)

	result, err := service.TestServer(context.Background(), "s-1")
	require.NoError(t, err)
	assert.False(t, result.OK())
	assert.Equal(t, "timeout", result.Message)
}

func TestCatalogServiceNormalizesDiscountCodes(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	service := NewCatalogService(api, domain.RoleAdmin, fixedClock(t))

	form := domain.NewDiscountCodeForm()
	form.Code = "  spring-26 "
	form.DiscountPercent = domain.Some(20.0)

	api.EXPECT().UpdateDiscountCode(mockAnyContext(), "d-1", mock.MatchedBy(func(f domain.DiscountCodeForm) bool {
		return f.Code == "SPRING-26"
	})).Return(domain.DiscountCode{ID: "d-1", Code: "SPRING-26"}, nil)

	code, err := service.UpdateDiscountCode(context.Background(), "d-1", form)
	require.NoError(t, err)
	assert.Equal(t, "SPRING-26", code.Code)
}

func TestCatalogServiceLookupByID(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	service := NewCatalogService(api, domain.RoleViewer, fixedClock(t))
	ctx := context.Background()

	api.EXPECT().ListResellers(mockAnyContext()).Return([]domain.Reseller{
		{ID: "r-1", TelegramUserID: 42},
		{ID: "r-2", TelegramUserID: 43},
	}, nil)
	api.EXPECT().ListDepartments(mockAnyContext()).Return([]domain.Department{{ID: "dep-1", Name: "Billing"}}, nil)

	reseller, err := service.Reseller(ctx, "r-2")
	require.NoError(t, err)
	assert.Equal(t, int64(43), reseller.TelegramUserID)

	_, err = service.Department(ctx, "dep-9")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "department dep-9: not found")
}

func TestCatalogServiceSetResellerBalance(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	service := NewCatalogService(api, domain.RoleAdmin, fixedClock(t))
	ctx := context.Background()

	api.EXPECT().SetResellerBalance(mockAnyContext(), "r-1", -2500.0).Return(nil)

	require.NoError(t, service.SetResellerBalance(ctx, "r-1", -2500))
	assert.Error(t, service.SetResellerBalance(ctx, "r-1", math.NaN()))
	assert.Error(t, service.SetResellerBalance(ctx, "r-1", math.Inf(-1)))
}

func TestCatalogServiceDashboardChartBounds(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	service := NewCatalogService(api, domain.RoleViewer, fixedClock(t))
	ctx := context.Background()

	api.EXPECT().DashboardChart(mockAnyContext(), 7).Return([]domain.ChartPoint{{Date: "03-01", Orders: 4}}, nil)

	points, err := service.DashboardChart(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, points, 1)

	_, err = service.DashboardChart(ctx, 0)
	assert.ErrorContains(t, err, "between 1 and 90")
	_, err = service.DashboardChart(ctx, MaxChartDays+1)
	assert.Error(t, err)
}

func TestCatalogServiceSettingsNeedSuperAdmin(t *testing.T) {
	ctx := context.Background()
	patch := domain.Settings{"support_username": "@help"}

	admin := NewCatalogService(mocks.NewMockCatalogAPI(t), domain.RoleAdmin, fixedClock(t))
	_, err := admin.UpdateSettings(ctx, patch)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	api := mocks.NewMockCatalogAPI(t)
	super := NewCatalogService(api, domain.RoleSuperAdmin, fixedClock(t))

	_, err = super.UpdateSettings(ctx, domain.Settings{})
	assert.ErrorIs(t, err, domain.ErrInvalidForm)

	api.EXPECT().UpdateSettings(mockAnyContext(), patch).
		Return(domain.Settings{"support_username": "@help", "referral_enabled": true}, nil)

	settings, err := super.UpdateSettings(ctx, patch)
	require.NoError(t, err)
	assert.Equal(t, true, settings["referral_enabled"])
}
