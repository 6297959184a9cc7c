package application

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/bnema/vpnadm/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogServiceReviewPayment(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	service := NewCatalogService(api, domain.RoleAdmin, fixedClock(t))

	api.EXPECT().ReviewPayment(mockAnyContext(), "p-1", domain.PaymentReview{
		Status:    domain.PaymentApproved,
		AdminNote: "ok",
	}).Return(nil)
	api.EXPECT().ReviewPayment(mockAnyContext(), "p-2", domain.PaymentReview{
		Status: domain.PaymentRejected,
	}).Return(nil)

	require.NoError(t, service.ReviewPayment(context.Background(), "p-1", ReviewApprove, " ok "))
	require.NoError(t, service.ReviewPayment(context.Background(), "p-2", ReviewReject, ""))

	err := service.ReviewPayment(context.Background(), "p-3", ReviewDecision("maybe"), "")
	assert.ErrorContains(t, err, "unknown review decision")
}

func TestCatalogServiceRoleGates(t *testing.T) {
	ctx := context.Background()

	support := NewCatalogService(mocks.NewMockCatalogAPI(t), domain.RoleSupport, fixedClock(t))
	assert.ErrorIs(t, support.ReviewPayment(ctx, "p-1", ReviewApprove, ""), domain.ErrPermissionDenied)
	assert.ErrorIs(t, support.ToggleUserBan(ctx, 42), domain.ErrPermissionDenied)

	admin := NewCatalogService(mocks.NewMockCatalogAPI(t), domain.RoleAdmin, fixedClock(t))
	assert.ErrorIs(t, admin.SetUserWallet(ctx, 42, 10), domain.ErrPermissionDenied)

	viewer := NewCatalogService(mocks.NewMockCatalogAPI(t), domain.RoleViewer, fixedClock(t))
	assert.ErrorIs(t, viewer.ReplyTicket(ctx, "t-1", "hi"), domain.ErrPermissionDenied)
	assert.ErrorIs(t, viewer.SetTicketStatus(ctx, "t-1", domain.TicketClosed), domain.ErrPermissionDenied)
}

func TestCatalogServiceSupportAnswersTickets(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	service := NewCatalogService(api, domain.RoleSupport, fixedClock(t))

	api.EXPECT().ReplyTicket(mockAnyContext(), "t-1", "restart the app").Return(nil)
	api.EXPECT().SetTicketStatus(mockAnyContext(), "t-1", domain.TicketClosed).Return(nil)

	require.NoError(t, service.ReplyTicket(context.Background(), "t-1", "  restart the app\n"))
	require.NoError(t, service.SetTicketStatus(context.Background(), "t-1", domain.TicketClosed))

	assert.ErrorIs(t, service.ReplyTicket(context.Background(), "t-1", "   "), ErrEmptyReply)
	assert.ErrorContains(t, service.SetTicketStatus(context.Background(), "t-1", "archived"), "unknown ticket status")
}

func TestCatalogServiceSuperAdminManagesUsers(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	service := NewCatalogService(api, domain.RoleSuperAdmin, fixedClock(t))

	api.EXPECT().ToggleUserBan(mockAnyContext(), int64(42)).Return(nil)
	api.EXPECT().SetUserWallet(mockAnyContext(), int64(42), 150000.0).Return(nil)

	require.NoError(t, service.ToggleUserBan(context.Background(), 42))
	require.NoError(t, service.SetUserWallet(context.Background(), 42, 150000))
	assert.Error(t, service.SetUserWallet(context.Background(), 42, -1))
	assert.Error(t, service.SetUserWallet(context.Background(), 42, math.NaN()))
}

func TestCatalogServiceRejectsUnknownStatusFilters(t *testing.T) {
	service := NewCatalogService(mocks.NewMockCatalogAPI(t), domain.RoleAdmin, fixedClock(t))
	ctx := context.Background()

	_, err := service.Orders(ctx, "lost")
	assert.Error(t, err)
	_, err = service.Payments(ctx, "lost")
	assert.Error(t, err)
	_, err = service.Tickets(ctx, "lost")
	assert.Error(t, err)
}

func TestCatalogServiceListsPassFilters(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	service := NewCatalogService(api, domain.RoleViewer, fixedClock(t))
	ctx := context.Background()

	api.EXPECT().ListOrders(mockAnyContext(), domain.OrderPending).Return([]domain.Order{{ID: "o-1"}}, nil)
	api.EXPECT().ListPayments(mockAnyContext(), domain.PaymentStatus("")).Return([]domain.Payment{{ID: "p-1"}}, nil)
	api.EXPECT().ListTickets(mockAnyContext(), domain.TicketOpen).Return([]domain.Ticket{{ID: "t-1"}}, nil)
	api.EXPECT().ListUsers(mockAnyContext(), "ali").Return([]domain.TelegramUser{{TelegramID: 1}}, nil)

	orders, err := service.Orders(ctx, domain.OrderPending)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	payments, err := service.Payments(ctx, "")
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	tickets, err := service.Tickets(ctx, domain.TicketOpen)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)

	users, err := service.Users(ctx, " ali ")
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCatalogServiceUsableDiscountCodes(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	service := NewCatalogService(api, domain.RoleViewer, fixedClock(t))

	codes := []domain.DiscountCode{
		{Code: "FRESH", Active: true, MaxUses: domain.Some(10), UsedCount: 3},
		{Code: "USEDUP", Active: true, MaxUses: domain.Some(2), UsedCount: 2},
		{Code: "OLD", Active: true, ValidUntil: domain.Some(fixedNow.Add(-24 * time.Hour))},
		{Code: "OFF", Active: false},
		{Code: "OPEN", Active: true},
	}
	api.EXPECT().ListDiscountCodes(mockAnyContext()).Return(codes, nil).Twice()

	all, err := service.DiscountCodes(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	usable, err := service.DiscountCodes(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, usable, 2)
	assert.Equal(t, "FRESH", usable[0].Code)
	assert.Equal(t, "OPEN", usable[1].Code)
}
