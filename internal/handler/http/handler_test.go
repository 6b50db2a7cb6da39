package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/absence"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/auth"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/consultation"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/dailyreport"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/employee"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/report"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/user"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
)

// Fakes embed the service interface so that only the methods a test
// exercises need an implementation.

type fakeAuthService struct {
	auth.AuthService
	login     func(auth.LoginRequest) (auth.TokenResponse, error)
	refresh   func(auth.RefreshTokenRequest) (auth.AccessTokenResponse, error)
	loggedOut []string
}

func (f *fakeAuthService) Login(_ context.Context, req auth.LoginRequest, _ auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	return f.login(req)
}

func (f *fakeAuthService) RefreshToken(_ context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	return f.refresh(req)
}

func (f *fakeAuthService) Logout(_ context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

func (f *fakeAuthService) Me(ctx context.Context) (user.UserResponse, error) {
	p, ok := user.PrincipalFromContext(ctx)
	if !ok {
		return user.UserResponse{}, user.ErrUnauthenticated
	}
	return user.UserResponse{ID: p.UserID, Username: p.Username}, nil
}

type fakeUserService struct {
	user.UserService
	deleted []int64
}

func (f *fakeUserService) Delete(ctx context.Context, id int64) error {
	if p, _ := user.PrincipalFromContext(ctx); p.UserID == id {
		return user.ErrCannotDeleteSelf
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeEmployeeService struct {
	employee.EmployeeService
}

func (fakeEmployeeService) GetByID(_ context.Context, id int64) (employee.EmployeeResponse, error) {
	if id != 1 {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return employee.EmployeeResponse{ID: 1, FirstName: "Ana", LastName: "López"}, nil
}

type fakeReasonService struct {
	absence.ReasonService
}

func (fakeReasonService) Create(context.Context, absence.CreateReasonRequest) (absence.ReasonResponse, error) {
	return absence.ReasonResponse{}, absence.ErrReasonCodeExists
}

type fakeReportService struct {
	report.ReportService
	created   bool
	stateSets int
}

func (f *fakeReportService) SetState(_ context.Context, req report.UpdateStateRequest) (report.ReportResponse, error) {
	f.stateSets++
	return report.ReportResponse{ID: req.ID, Date: "2024-01-15", State: req.State}, nil
}

func (f *fakeReportService) Generate(_ context.Context, req report.GenerateRequest) (report.ReportResponse, bool, error) {
	return report.ReportResponse{ID: 1, Date: req.Date, State: report.StateActive}, f.created, nil
}

type fakeDailyReportService struct {
	dailyreport.DailyReportService
	open     bool
	lastList dailyreport.ListRequest
	bulk     func(dailyreport.BulkSaveRequest) (dailyreport.UpsertResult, error)
}

func (f *fakeDailyReportService) ListByDate(_ context.Context, req dailyreport.ListRequest) ([]dailyreport.DetailResponse, error) {
	f.lastList = req
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !f.open {
		return nil, report.ErrNotGenerated
	}
	return []dailyreport.DetailResponse{{FirstName: "Ana", LastName: "López"}}, nil
}

func (f *fakeDailyReportService) BulkSave(_ context.Context, req dailyreport.BulkSaveRequest) (dailyreport.UpsertResult, error) {
	return f.bulk(req)
}

func (f *fakeDailyReportService) Delete(context.Context, int64) error {
	return nil
}

type fakeAttendanceService struct {
	attendance.AttendanceService
}

func (fakeAttendanceService) Stats(_ context.Context, date string) (attendance.StatsResponse, error) {
	if date == "15/01/2024" {
		return attendance.StatsResponse{}, attendance.ErrInvalidDate
	}
	return attendance.StatsResponse{Today: attendance.DailyStats{Date: date, Percentage: 40}}, nil
}

type fakeConsultationService struct {
	consultation.ConsultationService
}

func (fakeConsultationService) Export(_ context.Context, _ consultation.Filter, format consultation.Format, w io.Writer) (string, error) {
	if format != consultation.FormatCSV && format != consultation.FormatXLSX {
		return "", consultation.ErrUnsupportedFormat
	}
	_, err := io.WriteString(w, "sep=;\n")
	return "reportes_asistencia_20240115000000." + string(format), err
}

type testServer struct {
	handler     http.Handler
	jwt         jwt.Service
	auth        *fakeAuthService
	users       *fakeUserService
	reports     *fakeReportService
	dailyReport *fakeDailyReportService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		jwt:         jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp, false),
		auth:        &fakeAuthService{},
		users:       &fakeUserService{},
		reports:     &fakeReportService{},
		dailyReport: &fakeDailyReportService{},
	}
	ts.handler = NewRouter(RouterConfig{AllowedOrigins: []string{"http://localhost:3000"}, Env: "test", LogLevel: slog.LevelError}, ts.jwt, Handlers{
		Auth:          NewAuthHandler(ts.jwt, ts.auth),
		User:          NewUserHandler(ts.users),
		Employee:      NewEmployeeHandler(fakeEmployeeService{}),
		AbsenceReason: NewAbsenceReasonHandler(fakeReasonService{}),
		Report:        NewReportHandler(ts.reports),
		DailyReport:   NewDailyReportHandler(ts.dailyReport),
		Attendance:    NewAttendanceHandler(fakeAttendanceService{}),
		Consultation:  NewConsultationHandler(fakeConsultationService{}),
	})
	return ts
}

func (ts *testServer) token(t *testing.T, userID int64, roles ...user.Role) string {
	t.Helper()
	token, _, err := ts.jwt.GenerateAccessToken(userID, "tester", roles)
	require.NoError(t, err)
	return token
}

func (ts *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}
