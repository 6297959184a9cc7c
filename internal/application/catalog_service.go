package application

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/bnema/vpnadm/internal/ports"
)

var ErrEmptyReply = errors.New("reply message is empty")

// CatalogService covers the panel sections around clients: the dashboard,
// plans, servers, orders, payments, discount codes, tickets, departments,
// resellers, bot users and bot settings.
type CatalogService struct {
	api   ports.CatalogAPI
	role  domain.Role
	clock ports.Clock
}

func NewCatalogService(api ports.CatalogAPI, role domain.Role, clock ports.Clock) *CatalogService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &CatalogService{api: api, role: role, clock: clock}
}

func (s *CatalogService) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	stats, err := s.api.DashboardStats(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("load dashboard: %w", err)
	}
	return stats, nil
}

func (s *CatalogService) Plans(ctx context.Context) ([]domain.Plan, error) {
	plans, err := s.api.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

func (s *CatalogService) Servers(ctx context.Context) ([]domain.Server, error) {
	servers, err := s.api.ListServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list servers: %w", err)
	}
	return servers, nil
}

func (s *CatalogService) Orders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("unknown order status %q", status)
	}

	orders, err := s.api.ListOrders(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *CatalogService) Payments(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("unknown payment status %q", status)
	}

	payments, err := s.api.ListPayments(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// ReviewPayment approves or rejects a receipt. The panel confirms the order and
// provisions the subscription on approval.
func (s *CatalogService) ReviewPayment(ctx context.Context, id string, decision ReviewDecision, note string) error {
	if !s.allowed(domain.Role.CanMutate) {
		return s.denied("review payments")
	}

	status, err := decision.Status()
	if err != nil {
		return err
	}

	review := domain.PaymentReview{Status: status, AdminNote: strings.TrimSpace(note)}
	if err := s.api.ReviewPayment(ctx, id, review); err != nil {
		return fmt.Errorf("review payment %s: %w", id, err)
	}
	return nil
}

func (s *CatalogService) DiscountCodes(ctx context.Context, usableOnly bool) ([]domain.DiscountCode, error) {
	codes, err := s.api.ListDiscountCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list discount codes: %w", err)
	}
	if !usableOnly {
		return codes, nil
	}

	now := s.clock.Now()
	usable := make([]domain.DiscountCode, 0, len(codes))
	for _, code := range codes {
		if code.Active && !code.Exhausted() && !code.ExpiredAt(now) {
			usable = append(usable, code)
		}
	}
	return usable, nil
}

func (s *CatalogService) Tickets(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("unknown ticket status %q", status)
	}

	tickets, err := s.api.ListTickets(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

func (s *CatalogService) ReplyTicket(ctx context.Context, id string, message string) error {
	if !s.allowed(domain.Role.CanAnswerTickets) {
		return s.denied("answer tickets")
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return ErrEmptyReply
	}

	if err := s.api.ReplyTicket(ctx, id, message); err != nil {
		return fmt.Errorf("reply to ticket %s: %w", id, err)
	}
	return nil
}

func (s *CatalogService) SetTicketStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	if !s.allowed(domain.Role.CanAnswerTickets) {
		return s.denied("change tickets")
	}
	if !status.Valid() {
		return fmt.Errorf("unknown ticket status %q", status)
	}

	if err := s.api.SetTicketStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set ticket %s status: %w", id, err)
	}
	return nil
}

func (s *CatalogService) Resellers(ctx context.Context) ([]domain.Reseller, error) {
	resellers, err := s.api.ListResellers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resellers: %w", err)
	}
	return resellers, nil
}

func (s *CatalogService) Users(ctx context.Context, search string) ([]domain.TelegramUser, error) {
	users, err := s.api.ListUsers(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *CatalogService) ToggleUserBan(ctx context.Context, telegramID int64) error {
	if !s.allowed(domain.Role.CanManageUsers) {
		return s.denied("ban users")
	}

	if err := s.api.ToggleUserBan(ctx, telegramID); err != nil {
		return fmt.Errorf("toggle ban for %d: %w", telegramID, err)
	}
	return nil
}

func (s *CatalogService) SetUserWallet(ctx context.Context, telegramID int64, amount float64) error {
	if !s.allowed(domain.Role.CanManageUsers) {
		return s.denied("change wallets")
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return fmt.Errorf("invalid wallet amount %v", amount)
	}

	if err := s.api.SetUserWallet(ctx, telegramID, amount); err != nil {
		return fmt.Errorf("set wallet for %d: %w", telegramID, err)
	}
	return nil
}

// allowed lets an unknown role through; the panel enforces the real check.
func (s *CatalogService) allowed(check func(domain.Role) bool) bool {
	return s.role == "" || check(s.role)
}

func (s *CatalogService) denied(action string) error {
	return fmt.Errorf("%w: %s cannot %s", domain.ErrPermissionDenied, s.role.Label(), action)
}
