package handlers_fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/username/vacation-hub/internal/calendar"
	"github.com/username/vacation-hub/internal/config"
	"github.com/username/vacation-hub/internal/repository/jsonfile"
	"github.com/username/vacation-hub/internal/vacation"
)

var fixedNow = time.Date(2026, 6, 17, 9, 30, 0, 0, time.UTC)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Default()
	cfg.Auth.AdminPassword = "Admin"

	store := jsonfile.New(t.TempDir(), zap.NewNop())
	require.NoError(t, store.OnStart(context.Background()))

	mgr := vacation.NewManager(&cfg, store, calendar.NewRegionalCalendar(), zap.NewNop())
	mgr.SetClock(func() time.Time { return fixedNow })

	h := NewHandler(zap.NewNop(), mgr)
	h.now = func() time.Time { return fixedNow }

	app := fiber.New()
	h.Register(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

type memberResponse struct {
	Success bool      `json:"success"`
	Member  memberDTO `json:"member"`
}

type vacationResponse struct {
	Success  bool        `json:"success"`
	Vacation vacationDTO `json:"vacation"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func seedTeam(t *testing.T, app *fiber.App) map[string]string {
	t.Helper()

	ids := map[string]string{}
	for _, m := range []map[string]string{
		{"name": "Anna", "colorId": "coral"},
		{"name": "Ben", "color": "teal"},
	} {
		status, data := do(t, app, http.MethodPost, "/api/team", m)
		require.Equal(t, http.StatusCreated, status, string(data))
		res := decode[memberResponse](t, data)
		require.True(t, res.Success)
		ids[res.Member.Name] = res.Member.ID
	}
	return ids
}

func TestTeamEndpoints(t *testing.T) {
	app := newTestApp(t)
	seedTeam(t, app)

	status, data := do(t, app, http.MethodPost, "/api/team", map[string]string{"name": "anna"})
	require.Equal(t, http.StatusConflict, status)
	require.False(t, decode[messageResponse](t, data).Success)

	status, data = do(t, app, http.MethodPost, "/api/team", map[string]string{"name": "  "})
	require.Equal(t, http.StatusBadRequest, status)

	status, data = do(t, app, http.MethodGet, "/api/team", nil)
	require.Equal(t, http.StatusOK, status)
	team := decode[[]memberDTO](t, data)
	require.Len(t, team, 2)
	require.Equal(t, "#FF6B6B", team[0].Color)
	require.Equal(t, "teal", team[1].ColorID)

	status, data = do(t, app, http.MethodGet, "/api/team?colors=true", nil)
	require.Equal(t, http.StatusOK, status)
	withColors := decode[struct {
		Team   []memberDTO       `json:"team"`
		Colors []json.RawMessage `json:"colors"`
	}](t, data)
	require.Len(t, withColors.Team, 2)
	require.Len(t, withColors.Colors, 15)
}

func TestDeleteMember_Password(t *testing.T) {
	app := newTestApp(t)
	ids := seedTeam(t, app)

	status, _ := do(t, app, http.MethodDelete, "/api/team/"+ids["Ben"], map[string]string{"password": "wrong"})
	require.Equal(t, http.StatusForbidden, status)

	status, _ = do(t, app, http.MethodDelete, "/api/team/"+ids["Ben"], nil)
	require.Equal(t, http.StatusForbidden, status)

	status, data := do(t, app, http.MethodDelete, "/api/team/"+ids["Ben"], map[string]string{"password": "Admin"})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Ben", decode[memberResponse](t, data).Member.Name)

	status, _ = do(t, app, http.MethodDelete, "/api/team/"+ids["Ben"], map[string]string{"password": "Admin"})
	require.Equal(t, http.StatusNotFound, status)
}

func TestVacationEndpoints(t *testing.T) {
	app := newTestApp(t)
	seedTeam(t, app)

	status, data := do(t, app, http.MethodPost, "/api/vacations", map[string]string{
		"name": "anna", "start": "2026-06-08", "end": "2026-06-12", "vertreter": "ben",
	})
	require.Equal(t, http.StatusCreated, status, string(data))
	created := decode[vacationResponse](t, data).Vacation
	require.Equal(t, "Anna", created.Name)
	require.Equal(t, "Ben", created.StandIn)
	require.Equal(t, "2026-06-08", created.Start)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"bad date", map[string]string{"name": "Anna", "start": "2026-13-01", "end": "2026-06-12"}},
		{"inverted", map[string]string{"name": "Anna", "start": "2026-06-12", "end": "2026-06-08"}},
		{"not on roster", map[string]string{"name": "Carla", "start": "2026-06-08", "end": "2026-06-12"}},
		{"self stand-in", map[string]string{"name": "Anna", "start": "2026-06-08", "end": "2026-06-12", "vertreter": "Anna"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, data := do(t, app, http.MethodPost, "/api/vacations", tt.body)
			require.Equal(t, http.StatusBadRequest, status)
			res := decode[messageResponse](t, data)
			require.False(t, res.Success)
			require.NotEmpty(t, res.Message)
		})
	}

	status, data = do(t, app, http.MethodPut, "/api/vacations/"+created.ID, map[string]string{
		"start": "2026-07-06", "end": "2026-07-10",
	})
	require.Equal(t, http.StatusOK, status, string(data))
	require.Equal(t, "2026-07-10", decode[vacationResponse](t, data).Vacation.End)

	status, _ = do(t, app, http.MethodPut, "/api/vacations/missing", map[string]string{
		"start": "2026-07-06", "end": "2026-07-10",
	})
	require.Equal(t, http.StatusNotFound, status)

	status, data = do(t, app, http.MethodGet, "/api/vacations", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, decode[[]vacationDTO](t, data), 1)

	status, _ = do(t, app, http.MethodDelete, "/api/vacations/"+created.ID, map[string]string{"password": "nope"})
	require.Equal(t, http.StatusForbidden, status)

	status, _ = do(t, app, http.MethodDelete, "/api/vacations/"+created.ID, map[string]string{"password": "Admin"})
	require.Equal(t, http.StatusOK, status)

	status, data = do(t, app, http.MethodGet, "/api/vacations", nil)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, decode[[]vacationDTO](t, data))
}

func TestStatisticsEndpoints(t *testing.T) {
	app := newTestApp(t)
	seedTeam(t, app)

	for _, body := range []map[string]string{
		{"name": "Anna", "start": "2026-06-08", "end": "2026-06-12"},
		{"name": "Ben", "start": "2026-06-10", "end": "2026-06-16"},
	} {
		status, data := do(t, app, http.MethodPost, "/api/vacations", body)
		require.Equal(t, http.StatusCreated, status, string(data))
	}

	status, data := do(t, app, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, status)
	stats := decode[struct {
		Quota   int              `json:"quota"`
		Members []memberStatsDTO `json:"members"`
	}](t, data)
	require.Equal(t, 30, stats.Quota)
	require.Len(t, stats.Members, 2)
	require.Equal(t, 5, stats.Members[0].DaysBooked)
	require.Equal(t, 25, stats.Members[0].Remaining)
	require.Equal(t, 5, stats.Members[1].DaysBooked)

	status, data = do(t, app, http.MethodGet, "/api/absence?start=2026-06-01&end=2026-06-30", nil)
	require.Equal(t, http.StatusOK, status)
	abs := decode[absenceDTO](t, data)
	require.Equal(t, 21, abs.WorkingDays)
	require.Equal(t, 2, abs.TeamSize)
	require.Equal(t, 42, abs.TotalWorkingDays)
	require.Equal(t, 10, abs.AbsentWorkingDays)
	require.Equal(t, 32, abs.PresentWorkingDays)

	// Defaults to the month of the clock
	status, data = do(t, app, http.MethodGet, "/api/absence", nil)
	require.Equal(t, http.StatusOK, status)
	abs = decode[absenceDTO](t, data)
	require.Equal(t, "2026-06-01", abs.Start)
	require.Equal(t, "2026-06-30", abs.End)

	status, _ = do(t, app, http.MethodGet, "/api/absence?start=2026-06-30&end=2026-06-01", nil)
	require.Equal(t, http.StatusBadRequest, status)
	status, _ = do(t, app, http.MethodGet, "/api/absence?start=junk", nil)
	require.Equal(t, http.StatusBadRequest, status)

	status, data = do(t, app, http.MethodGet, "/api/collisions", nil)
	require.Equal(t, http.StatusOK, status)
	collisions := decode[[]collisionDTO](t, data)
	require.Len(t, collisions, 1)
	require.Equal(t, "2026-06-10", collisions[0].OverlapStart)
	require.Equal(t, "2026-06-12", collisions[0].OverlapEnd)

	status, data = do(t, app, http.MethodGet, "/api/density", nil)
	require.Equal(t, http.StatusOK, status)
	density := decode[densityDTO](t, data)
	require.Equal(t, 2, density.Max)
	require.Len(t, density.Months, 12)
	require.Equal(t, "Juni", density.Months[5].Name)
	require.Equal(t, 1.0, density.Months[5].Opacity)

	status, data = do(t, app, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, status)
	dash := decode[dashboardDTO](t, data)
	require.Len(t, dash.Team, 2)
	require.Len(t, dash.Collisions, 1)
	require.Equal(t, 10, dash.Absence.AbsentWorkingDays)
	require.Equal(t, "2026-06-17T09:30:00.000Z", dash.GeneratedAt)
}

func TestCalendarEndpoints(t *testing.T) {
	app := newTestApp(t)

	status, data := do(t, app, http.MethodGet, "/api/holidays?years=2026,2027", nil)
	require.Equal(t, http.StatusOK, status)
	holidays := decode[[]holidayDTO](t, data)
	require.Len(t, holidays, 24)
	require.Equal(t, holidayDTO{Date: "2026-01-01", Name: "Neujahr"}, holidays[0])

	status, data = do(t, app, http.MethodGet, "/api/holidays", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, decode[[]holidayDTO](t, data), 12)

	status, _ = do(t, app, http.MethodGet, "/api/holidays?years=20x6", nil)
	require.Equal(t, http.StatusBadRequest, status)

	status, data = do(t, app, http.MethodGet, "/api/school-holidays?year=2026", nil)
	require.Equal(t, http.StatusOK, status)
	school := decode[[]schoolHolidayDTO](t, data)
	require.Len(t, school, 5)
	require.Equal(t, "Weihnachtsferien", school[4].Name)
	require.Equal(t, "2027-01-10", school[4].End)

	status, data = do(t, app, http.MethodGet, "/api/school-holidays?year=2030", nil)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, decode[[]schoolHolidayDTO](t, data))

	status, data = do(t, app, http.MethodGet, "/api/calendar/2026/6", nil)
	require.Equal(t, http.StatusOK, status)
	month := decode[monthDTO](t, data)
	require.Equal(t, 21, month.WorkDays)
	require.Len(t, month.Days, 30)
	require.Equal(t, "holiday", month.Days[3].Type)
	require.Equal(t, "Fronleichnam", month.Days[3].Note)
	require.Equal(t, "Monday", month.Days[0].Weekday)

	status, _ = do(t, app, http.MethodGet, "/api/calendar/2026/13", nil)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestExportEndpoints(t *testing.T) {
	app := newTestApp(t)
	seedTeam(t, app)

	status, data := do(t, app, http.MethodPost, "/api/vacations", map[string]string{
		"name": "Anna", "start": "2026-07-01", "end": "2026-07-10", "vertreter": "Ben",
	})
	require.Equal(t, http.StatusCreated, status, string(data))

	status, data = do(t, app, http.MethodGet, "/api/export/vacations.ics", nil)
	require.Equal(t, http.StatusOK, status)
	body := string(data)
	require.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR"))
	require.Contains(t, body, "SUMMARY:Urlaub: Anna")
	require.Contains(t, body, "20260711")

	status, data = do(t, app, http.MethodGet, "/api/export/stats.csv", nil)
	require.Equal(t, http.StatusOK, status)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[1], "Anna,#FF6B6B,30,8,22,1,"))
}
