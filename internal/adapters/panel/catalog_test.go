package panel

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readBody(t *testing.T, r *http.Request) string {
	t.Helper()

	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	return string(body)
}

func TestPlanAndServerMutations(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "POST /api/plans":
			assert.JSONEq(t, `{"name":"Monthly","description":null,"price":150000,"duration_days":30,
				"traffic_gb":50,"user_limit":1,"server_ids":["s-1"],"is_active":true,"is_test":false,"sort_order":0}`,
				readBody(t, r))
			_, _ = io.WriteString(w, `{"id":"p-9","name":"Monthly","price":150000,"duration_days":30,"traffic_gb":50,
				"user_limit":1,"server_ids":["s-1"],"is_active":true}`)
		case "PUT /api/plans/p-9":
			assert.JSONEq(t, `{"name":"Monthly","description":"Best seller","price":150000,"duration_days":30,
				"traffic_gb":null,"user_limit":1,"server_ids":[],"is_active":false,"is_test":false,"sort_order":2}`,
				readBody(t, r))
			_, _ = io.WriteString(w, `{"id":"p-9","name":"Monthly","traffic_gb":null,"is_active":false}`)
		case "DELETE /api/plans/p-9":
		case "PUT /api/servers/s-1":
			assert.JSONEq(t, `{"name":"fra-1","panel_url":"https://fra-1.example.com","is_active":true,
				"max_users":100,"description":null}`, readBody(t, r))
			_, _ = io.WriteString(w, `{"id":"s-1","name":"fra-1","panel_url":"https://fra-1.example.com","max_users":100}`)
		case "POST /api/servers":
			assert.JSONEq(t, `{"name":"ams-1","panel_url":"https://ams-1.example.com","panel_username":"admin",
				"panel_password":"hunter2","is_active":true,"max_users":null,"description":null}`, readBody(t, r))
			_, _ = io.WriteString(w, `{"id":"s-2","name":"ams-1"}`)
		case "POST /api/servers/s-2/test":
			_, _ = io.WriteString(w, `{"status":"error","message":"login failed"}`)
		case "DELETE /api/servers/s-3":
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail":"Server not found"}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	form := domain.NewPlanForm()
	form.Name = "Monthly"
	form.Price = 150000
	form.DurationDays = 30
	form.TrafficGB = domain.Some(50.0)
	form.ServerIDs = []string{"s-1"}
	plan, err := client.CreatePlan(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "p-9", plan.ID)
	assert.Equal(t, domain.Some(50.0), plan.TrafficGB)

	form.Description = "Best seller"
	form.TrafficGB = domain.None[float64]()
	form.ServerIDs = nil
	form.Active = false
	form.SortOrder = 2
	plan, err = client.UpdatePlan(ctx, "p-9", form)
	require.NoError(t, err)
	assert.False(t, plan.Active)
	assert.True(t, plan.TrafficGB.IsNone())

	require.NoError(t, client.DeletePlan(ctx, "p-9"))

	edit := domain.EditServerForm(domain.Server{ID: "s-1", Name: "fra-1", PanelURL: "https://fra-1.example.com", Active: true})
	edit.MaxUsers = domain.Some(100)
	server, err := client.UpdateServer(ctx, "s-1", edit)
	require.NoError(t, err)
	assert.Equal(t, domain.Some(100), server.MaxUsers)

	create := domain.NewServerForm()
	create.Name = "ams-1"
	create.PanelURL = "https://ams-1.example.com"
	create.PanelUsername = "admin"
	create.PanelPassword = "hunter2"
	server, err = client.CreateServer(ctx, create)
	require.NoError(t, err)
	assert.Equal(t, "s-2", server.ID)

	result, err := client.TestServer(ctx, "s-2")
	require.NoError(t, err)
	assert.False(t, result.OK())
	assert.Equal(t, "login failed", result.Message)

	err = client.DeleteServer(ctx, "s-3")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrClientNotFound)
	assert.Equal(t, "Server not found", err.Error())
}

func TestDiscountCodeAndResellerMutations(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "POST /api/discount-codes":
			assert.JSONEq(t, `{"code":"SPRING","discount_percent":20,"discount_amount":null,"max_uses":5,
				"valid_until":"2026-04-01T00:00:00Z","min_order_amount":null,"plan_ids":[],"is_active":true}`,
				readBody(t, r))
			_, _ = io.WriteString(w, `{"id":"d-1","code":"SPRING","discount_percent":20,"max_uses":5,
				"valid_until":"2026-04-01T00:00:00","plan_ids":[],"is_active":true}`)
		case "PUT /api/discount-codes/d-1":
			assert.JSONEq(t, `{"code":"SPRING","discount_percent":null,"discount_amount":10000,"max_uses":5,
				"valid_until":null,"min_order_amount":50000,"plan_ids":["p-1"],"is_active":true}`, readBody(t, r))
			_, _ = io.WriteString(w, `{"id":"d-1","code":"SPRING","discount_amount":10000,"plan_ids":["p-1"]}`)
		case "DELETE /api/discount-codes/d-1":
		case "POST /api/resellers":
			assert.JSONEq(t, `{"telegram_user_id":42,"discount_percent":10,"credit_limit":0,"is_active":true}`, readBody(t, r))
			_, _ = io.WriteString(w, `{"id":"r-1","telegram_user_id":42,"discount_percent":10,"is_active":true}`)
		case "PUT /api/resellers/r-1":
			body := readBody(t, r)
			if body == `{"balance":-2500}` {
				return
			}
			assert.JSONEq(t, `{"discount_percent":15,"credit_limit":500000,"is_active":false}`, body)
			_, _ = io.WriteString(w, `{"id":"r-1","telegram_user_id":42,"discount_percent":15,"credit_limit":500000}`)
		case "DELETE /api/resellers/r-1":
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	codeForm := domain.NewDiscountCodeForm()
	codeForm.Code = "spring"
	codeForm.DiscountPercent = domain.Some(20.0)
	codeForm.MaxUses = domain.Some(5)
	codeForm.ValidUntil = domain.Some(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	code, err := client.CreateDiscountCode(ctx, codeForm)
	require.NoError(t, err)
	assert.Equal(t, "d-1", code.ID)
	assert.Equal(t, domain.Some(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)), code.ValidUntil)

	codeForm.DiscountPercent = domain.None[float64]()
	codeForm.DiscountAmount = domain.Some(10000.0)
	codeForm.ValidUntil = domain.None[time.Time]()
	codeForm.MinOrderAmount = domain.Some(50000.0)
	codeForm.PlanIDs = []string{"p-1"}
	code, err = client.UpdateDiscountCode(ctx, "d-1", codeForm)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1"}, code.PlanIDs)

	require.NoError(t, client.DeleteDiscountCode(ctx, "d-1"))

	resellerForm := domain.NewResellerForm()
	resellerForm.TelegramUserID = 42
	reseller, err := client.CreateReseller(ctx, resellerForm)
	require.NoError(t, err)
	assert.Equal(t, int64(42), reseller.TelegramUserID)

	resellerForm.DiscountPercent = 15
	resellerForm.CreditLimit = 500000
	resellerForm.Active = false
	reseller, err = client.UpdateReseller(ctx, "r-1", resellerForm)
	require.NoError(t, err)
	assert.Equal(t, 500000.0, reseller.CreditLimit)

	require.NoError(t, client.SetResellerBalance(ctx, "r-1", -2500))
	require.NoError(t, client.DeleteReseller(ctx, "r-1"))
}

func TestTicketDetailChartDepartmentsAndSettings(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /api/tickets/t-1":
			_, _ = io.WriteString(w, `{"id":"t-1","subject":"No handshake","status":"open","priority":"high",
				"department":{"name":"Technical"},"user":{"telegram_id":42,"username":"neo"},
				"messages":[
					{"id":"m-1","message":"It does not connect","is_admin":false,"created_at":"2026-02-28T10:00:00"},
					{"id":"m-2","message":"Re-import the config","is_admin":true,"admin_username":"ops"}
				]}`)
		case "GET /api/tickets/t-404":
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail":"Ticket not found"}`)
		case "GET /api/dashboard/chart":
			assert.Equal(t, "7", r.URL.Query().Get("days"))
			_, _ = io.WriteString(w, `[{"date":"02-28","revenue":300000,"orders":2,"users":5},
				{"date":"03-01","revenue":0,"orders":0,"users":1}]`)
		case "GET /api/departments":
			_, _ = io.WriteString(w, `[{"id":"dep-1","name":"Billing","description":null,"is_active":true,"sort_order":1}]`)
		case "POST /api/departments":
			assert.JSONEq(t, `{"name":"Technical","description":"Connection issues","is_active":true,"sort_order":0}`, readBody(t, r))
			_, _ = io.WriteString(w, `{"id":"dep-2","name":"Technical","description":"Connection issues","is_active":true}`)
		case "PUT /api/departments/dep-2":
			assert.JSONEq(t, `{"name":"Tech","description":"Connection issues","is_active":false,"sort_order":3}`, readBody(t, r))
			_, _ = io.WriteString(w, `{"id":"dep-2","name":"Tech","is_active":false,"sort_order":3}`)
		case "DELETE /api/departments/dep-2":
		case "GET /api/settings":
			_, _ = io.WriteString(w, `{"bot_username":"vpn_bot","payment_timeout_minutes":30,"referral_enabled":false}`)
		case "PUT /api/settings":
			assert.JSONEq(t, `{"referral_enabled":true}`, readBody(t, r))
			_, _ = io.WriteString(w, `{"bot_username":"vpn_bot","payment_timeout_minutes":30,"referral_enabled":true}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	ticket, err := client.GetTicket(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, "No handshake", ticket.Subject)
	assert.Equal(t, "Technical", ticket.Department)
	assert.Equal(t, domain.TicketHigh, ticket.Priority)
	require.Len(t, ticket.Messages, 2)
	assert.False(t, ticket.Messages[0].FromAdmin)
	assert.Equal(t, domain.Some(time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC)), ticket.Messages[0].CreatedAt)
	assert.Equal(t, "ops", ticket.Messages[1].AdminUsername)

	_, err = client.GetTicket(ctx, "t-404")
	require.ErrorIs(t, err, domain.ErrNotFound)

	points, err := client.DashboardChart(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []domain.ChartPoint{
		{Date: "02-28", Revenue: 300000, Orders: 2, Users: 5},
		{Date: "03-01", Users: 1},
	}, points)

	departments, err := client.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Department{{ID: "dep-1", Name: "Billing", Active: true, SortOrder: 1}}, departments)

	deptForm := domain.NewDepartmentForm()
	deptForm.Name = "Technical"
	deptForm.Description = "Connection issues"
	department, err := client.CreateDepartment(ctx, deptForm)
	require.NoError(t, err)
	assert.Equal(t, "dep-2", department.ID)

	deptForm.Name = "Tech"
	deptForm.Active = false
	deptForm.SortOrder = 3
	department, err = client.UpdateDepartment(ctx, "dep-2", deptForm)
	require.NoError(t, err)
	assert.Equal(t, 3, department.SortOrder)
	require.NoError(t, client.DeleteDepartment(ctx, "dep-2"))

	settings, err := client.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "vpn_bot", settings["bot_username"])
	assert.Equal(t, false, settings["referral_enabled"])

	settings, err = client.UpdateSettings(ctx, domain.Settings{"referral_enabled": true})
	require.NoError(t, err)
	assert.Equal(t, true, settings["referral_enabled"])
}
