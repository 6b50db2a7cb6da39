package consultation

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/consultation"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/clock"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeConsultationRepo struct {
	rows       []consultation.Row
	from, to   time.Time
	department *string
	calls      int
}

func (f *fakeConsultationRepo) Rows(_ context.Context, from, to time.Time, department *string) ([]consultation.Row, error) {
	f.calls++
	f.from, f.to, f.department = from, to, department
	return f.rows, nil
}

var testClock = clock.Fixed{At: time.Date(2024, 1, 17, 9, 5, 30, 0, time.UTC)}

func sampleRows() []consultation.Row {
	worked := decimal.RequireFromString("7.5")
	code := "0012"
	dept := "Ventas"
	reason := "Permiso"
	return []consultation.Row{
		{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), EmployeeID: 1, EmployeeCode: &code, FirstName: "Ana", LastName: "López", Department: &dept, HoursWorked: &worked, ReasonName: &reason},
		{Date: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), EmployeeID: 2, FirstName: "Luis", LastName: "Peña"},
	}
}

func TestConsultationService_Query(t *testing.T) {
	repo := &fakeConsultationRepo{rows: sampleRows()}
	svc := NewConsultationService(repo, testClock)

	todos := "Todos"
	rows, err := svc.Query(context.Background(), consultation.Filter{DateFrom: "2024-01-15", DateTo: "2024-01-16", Department: &todos})
	require.NoError(t, err)
	assert.Nil(t, repo.department)
	assert.Equal(t, "2024-01-15", repo.from.Format(clock.DateLayout))
	require.Len(t, rows, 2)

	assert.Equal(t, "0012", rows[0].EmployeeCode)
	assert.Equal(t, "N/A", rows[1].EmployeeCode)
	assert.Equal(t, "No especificado", rows[1].Department)
	assert.Equal(t, "N/A", rows[1].Reason)
	assert.True(t, rows[1].HoursWorked.IsZero())
}

func TestConsultationService_Query_InvalidRange(t *testing.T) {
	repo := &fakeConsultationRepo{}
	svc := NewConsultationService(repo, testClock)

	_, err := svc.Query(context.Background(), consultation.Filter{DateFrom: "2024-01-16", DateTo: "2024-01-15"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date_to")
	assert.Zero(t, repo.calls)
}

func TestConsultationService_ExportCSV(t *testing.T) {
	svc := NewConsultationService(&fakeConsultationRepo{rows: sampleRows()}, testClock)

	var buf bytes.Buffer
	name, err := svc.Export(context.Background(), consultation.Filter{DateFrom: "2024-01-15", DateTo: "2024-01-16"}, consultation.FormatCSV, &buf)
	require.NoError(t, err)
	assert.Equal(t, "reportes_asistencia_20240117090530.csv", name)

	body := strings.TrimPrefix(buf.String(), "\ufeff")
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "sep=;", lines[0])
	assert.Equal(t, strings.Join(consultation.Headers, ";"), lines[1])
	assert.Equal(t, "2024-01-15;0012;Ana;López;Ventas;7.5;0;Permiso;", lines[2])
	assert.Equal(t, "2024-01-16;N/A;Luis;Peña;No especificado;0;0;N/A;", lines[3])
}

func TestConsultationService_ExportXLSX(t *testing.T) {
	svc := NewConsultationService(&fakeConsultationRepo{rows: sampleRows()}, testClock)

	var buf bytes.Buffer
	name, err := svc.Export(context.Background(), consultation.Filter{DateFrom: "2024-01-15", DateTo: "2024-01-16"}, consultation.FormatXLSX, &buf)
	require.NoError(t, err)
	assert.Equal(t, "reportes_asistencia_20240117090530.xlsx", name)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Reportes")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, consultation.Headers, rows[0])
	assert.Equal(t, "7.5", rows[1][5])
}

func TestConsultationService_ExportUnsupportedFormat(t *testing.T) {
	repo := &fakeConsultationRepo{}
	svc := NewConsultationService(repo, testClock)

	_, err := svc.Export(context.Background(), consultation.Filter{DateFrom: "2024-01-15", DateTo: "2024-01-16"}, "pdf", &bytes.Buffer{})
	assert.ErrorIs(t, err, consultation.ErrUnsupportedFormat)
	assert.Zero(t, repo.calls)
}
