package application

import (
	"context"
	"fmt"
	"math"

	"github.com/bnema/vpnadm/internal/domain"
)

const MaxChartDays = 90

func (s *CatalogService) DashboardChart(ctx context.Context, days int) ([]domain.ChartPoint, error) {
	if days < 1 || days > MaxChartDays {
		return nil, fmt.Errorf("chart days must be between 1 and %d, got %d", MaxChartDays, days)
	}

	points, err := s.api.DashboardChart(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("load dashboard chart: %w", err)
	}
	return points, nil
}

// Plan looks a plan up in the list; the panel has no single-plan route.
func (s *CatalogService) Plan(ctx context.Context, id string) (domain.Plan, error) {
	plans, err := s.Plans(ctx)
	if err != nil {
		return domain.Plan{}, err
	}
	return findByID(plans, "plan", id, func(p domain.Plan) string { return p.ID })
}

func (s *CatalogService) CreatePlan(ctx context.Context, form domain.PlanForm) (domain.Plan, error) {
	if err := s.checkForm(ctx, "create plans", form); err != nil {
		return domain.Plan{}, err
	}

	plan, err := s.api.CreatePlan(ctx, form)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("create plan: %w", err)
	}
	return plan, nil
}

func (s *CatalogService) UpdatePlan(ctx context.Context, id string, form domain.PlanForm) (domain.Plan, error) {
	if err := s.checkForm(ctx, "edit plans", form); err != nil {
		return domain.Plan{}, err
	}

	plan, err := s.api.UpdatePlan(ctx, id, form)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("update plan %s: %w", id, err)
	}
	return plan, nil
}

func (s *CatalogService) DeletePlan(ctx context.Context, id string) error {
	return s.remove(ctx, "plan", id, s.api.DeletePlan)
}

func (s *CatalogService) Server(ctx context.Context, id string) (domain.Server, error) {
	servers, err := s.Servers(ctx)
	if err != nil {
		return domain.Server{}, err
	}
	return findByID(servers, "server", id, func(srv domain.Server) string { return srv.ID })
}

func (s *CatalogService) CreateServer(ctx context.Context, form domain.ServerForm) (domain.Server, error) {
	form.KeepCredentials = false
	if err := s.checkForm(ctx, "create servers", form); err != nil {
		return domain.Server{}, err
	}

	server, err := s.api.CreateServer(ctx, form)
	if err != nil {
		return domain.Server{}, fmt.Errorf("create server: %w", err)
	}
	return server, nil
}

func (s *CatalogService) UpdateServer(ctx context.Context, id string, form domain.ServerForm) (domain.Server, error) {
	if err := s.checkForm(ctx, "edit servers", form); err != nil {
		return domain.Server{}, err
	}

	server, err := s.api.UpdateServer(ctx, id, form)
	if err != nil {
		return domain.Server{}, fmt.Errorf("update server %s: %w", id, err)
	}
	return server, nil
}

func (s *CatalogService) DeleteServer(ctx context.Context, id string) error {
	return s.remove(ctx, "server", id, s.api.DeleteServer)
}

// TestServer reports a failed connection as a result, not an error.
func (s *CatalogService) TestServer(ctx context.Context, id string) (domain.ServerTestResult, error) {
	if !s.allowed(domain.Role.CanMutate) {
		return domain.ServerTestResult{}, s.denied("test servers")
	}

	result, err := s.api.TestServer(ctx, id)
	if err != nil {
		return domain.ServerTestResult{}, fmt.Errorf("test server %s: %w", id, err)
	}
	return result, nil
}

func (s *CatalogService) DiscountCode(ctx context.Context, id string) (domain.DiscountCode, error) {
	codes, err := s.DiscountCodes(ctx, false)
	if err != nil {
		return domain.DiscountCode{}, err
	}
	return findByID(codes, "discount code", id, func(c domain.DiscountCode) string { return c.ID })
}

func (s *CatalogService) CreateDiscountCode(ctx context.Context, form domain.DiscountCodeForm) (domain.DiscountCode, error) {
	form = form.Normalized()
	if err := s.checkForm(ctx, "create discount codes", form); err != nil {
		return domain.DiscountCode{}, err
	}

	code, err := s.api.CreateDiscountCode(ctx, form)
	if err != nil {
		return domain.DiscountCode{}, fmt.Errorf("create discount code: %w", err)
	}
	return code, nil
}

func (s *CatalogService) UpdateDiscountCode(ctx context.Context, id string, form domain.DiscountCodeForm) (domain.DiscountCode, error) {
	form = form.Normalized()
	if err := s.checkForm(ctx, "edit discount codes", form); err != nil {
		return domain.DiscountCode{}, err
	}

	code, err := s.api.UpdateDiscountCode(ctx, id, form)
	if err != nil {
		return domain.DiscountCode{}, fmt.Errorf("update discount code %s: %w", id, err)
	}
	return code, nil
}

func (s *CatalogService) DeleteDiscountCode(ctx context.Context, id string) error {
	return s.remove(ctx, "discount code", id, s.api.DeleteDiscountCode)
}

func (s *CatalogService) Ticket(ctx context.Context, id string) (domain.TicketDetail, error) {
	ticket, err := s.api.GetTicket(ctx, id)
	if err != nil {
		return domain.TicketDetail{}, fmt.Errorf("get ticket %s: %w", id, err)
	}
	return ticket, nil
}

func (s *CatalogService) Departments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.api.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

func (s *CatalogService) Department(ctx context.Context, id string) (domain.Department, error) {
	departments, err := s.Departments(ctx)
	if err != nil {
		return domain.Department{}, err
	}
	return findByID(departments, "department", id, func(d domain.Department) string { return d.ID })
}

func (s *CatalogService) CreateDepartment(ctx context.Context, form domain.DepartmentForm) (domain.Department, error) {
	if err := s.checkForm(ctx, "create departments", form); err != nil {
		return domain.Department{}, err
	}

	department, err := s.api.CreateDepartment(ctx, form)
	if err != nil {
		return domain.Department{}, fmt.Errorf("create department: %w", err)
	}
	return department, nil
}

func (s *CatalogService) UpdateDepartment(ctx context.Context, id string, form domain.DepartmentForm) (domain.Department, error) {
	if err := s.checkForm(ctx, "edit departments", form); err != nil {
		return domain.Department{}, err
	}

	department, err := s.api.UpdateDepartment(ctx, id, form)
	if err != nil {
		return domain.Department{}, fmt.Errorf("update department %s: %w", id, err)
	}
	return department, nil
}

func (s *CatalogService) DeleteDepartment(ctx context.Context, id string) error {
	return s.remove(ctx, "department", id, s.api.DeleteDepartment)
}

func (s *CatalogService) Reseller(ctx context.Context, id string) (domain.Reseller, error) {
	resellers, err := s.Resellers(ctx)
	if err != nil {
		return domain.Reseller{}, err
	}
	return findByID(resellers, "reseller", id, func(r domain.Reseller) string { return r.ID })
}

func (s *CatalogService) CreateReseller(ctx context.Context, form domain.ResellerForm) (domain.Reseller, error) {
	if err := s.checkForm(ctx, "create resellers", form); err != nil {
		return domain.Reseller{}, err
	}

	reseller, err := s.api.CreateReseller(ctx, form)
	if err != nil {
		return domain.Reseller{}, fmt.Errorf("create reseller: %w", err)
	}
	return reseller, nil
}

func (s *CatalogService) UpdateReseller(ctx context.Context, id string, form domain.ResellerForm) (domain.Reseller, error) {
	if err := s.checkForm(ctx, "edit resellers", form); err != nil {
		return domain.Reseller{}, err
	}

	reseller, err := s.api.UpdateReseller(ctx, id, form)
	if err != nil {
		return domain.Reseller{}, fmt.Errorf("update reseller %s: %w", id, err)
	}
	return reseller, nil
}

// SetResellerBalance overwrites the balance. It may go negative down to the
// reseller's credit limit, which the panel enforces.
func (s *CatalogService) SetResellerBalance(ctx context.Context, id string, balance float64) error {
	if !s.allowed(domain.Role.CanMutate) {
		return s.denied("change reseller balances")
	}
	if math.IsNaN(balance) || math.IsInf(balance, 0) {
		return fmt.Errorf("invalid balance %v", balance)
	}

	if err := s.api.SetResellerBalance(ctx, id, balance); err != nil {
		return fmt.Errorf("set balance for reseller %s: %w", id, err)
	}
	return nil
}

func (s *CatalogService) DeleteReseller(ctx context.Context, id string) error {
	return s.remove(ctx, "reseller", id, s.api.DeleteReseller)
}

func (s *CatalogService) Settings(ctx context.Context) (domain.Settings, error) {
	settings, err := s.api.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

func (s *CatalogService) UpdateSettings(ctx context.Context, patch domain.Settings) (domain.Settings, error) {
	if !s.allowed(domain.Role.CanChangeSettings) {
		return nil, s.denied("change settings")
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("%w: no settings given", domain.ErrInvalidForm)
	}

	settings, err := s.api.UpdateSettings(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return settings, nil
}

type contextValidatable interface {
	ValidateWithContext(ctx context.Context) error
}

// checkForm applies the mutate gate, then validates.
func (s *CatalogService) checkForm(ctx context.Context, action string, form contextValidatable) error {
	if !s.allowed(domain.Role.CanMutate) {
		return s.denied(action)
	}
	return form.ValidateWithContext(ctx)
}

func (s *CatalogService) remove(ctx context.Context, kind, id string, del func(context.Context, string) error) error {
	if !s.allowed(domain.Role.CanMutate) {
		return s.denied("delete " + kind + "s")
	}

	if err := del(ctx, id); err != nil {
		return fmt.Errorf("delete %s %s: %w", kind, id, err)
	}
	return nil
}

func findByID[T any](items []T, kind, id string, key func(T) string) (T, error) {
	for _, item := range items {
		if key(item) == id {
			return item, nil
		}
	}

	var zero T
	return zero, fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
}
