package consultation

import (
	"testing"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Validate(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		f := Filter{DateFrom: "2024-01-01", DateTo: "2024-01-31"}
		assert.NoError(t, f.Validate())
	})

	t.Run("same day", func(t *testing.T) {
		f := Filter{DateFrom: "2024-01-15", DateTo: "2024-01-15"}
		assert.NoError(t, f.Validate())
	})

	t.Run("reversed range", func(t *testing.T) {
		f := Filter{DateFrom: "2024-02-01", DateTo: "2024-01-31"}
		var ve validator.ValidationErrors
		require.ErrorAs(t, f.Validate(), &ve)
		assert.Contains(t, ve.ToMap(), "date_to")
	})

	t.Run("missing dates", func(t *testing.T) {
		f := Filter{}
		var ve validator.ValidationErrors
		require.ErrorAs(t, f.Validate(), &ve)
		assert.Contains(t, ve.ToMap(), "date_from")
		assert.Contains(t, ve.ToMap(), "date_to")
	})

	t.Run("todos means every department", func(t *testing.T) {
		todos := "Todos"
		f := Filter{DateFrom: "2024-01-01", DateTo: "2024-01-02", Department: &todos}
		require.NoError(t, f.Validate())
		assert.Nil(t, f.Department)
	})

	t.Run("department is kept", func(t *testing.T) {
		dept := " Producción "
		f := Filter{DateFrom: "2024-01-01", DateTo: "2024-01-02", Department: &dept}
		require.NoError(t, f.Validate())
		require.NotNil(t, f.Department)
		assert.Equal(t, "Producción", *f.Department)
	})
}

func TestToRowResponse_Placeholders(t *testing.T) {
	resp := ToRowResponse(Row{
		Date:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		FirstName: "Ana",
		LastName:  "López",
	})

	assert.Equal(t, "2024-01-15", resp.Date)
	assert.Equal(t, "N/A", resp.EmployeeCode)
	assert.Equal(t, "No especificado", resp.Department)
	assert.Equal(t, "N/A", resp.Reason)
	assert.Equal(t, "", resp.Comments)
	assert.Equal(t, []string{"2024-01-15", "N/A", "Ana", "López", "No especificado", "0", "0", "N/A", ""}, resp.Record())
}

func TestToRowResponse_Values(t *testing.T) {
	code, dept, reason, comments := "0042", "Producción", "Enfermedad", "incapacidad"
	worked, absent := decimal.RequireFromString("4.5"), decimal.RequireFromString("3.5")
	resp := ToRowResponse(Row{
		Date:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		EmployeeCode: &code,
		Department:   &dept,
		HoursWorked:  &worked,
		HoursAbsent:  &absent,
		ReasonName:   &reason,
		Comments:     &comments,
	})
	assert.Len(t, resp.Record(), len(Headers))
	assert.Equal(t, "4.5", resp.Record()[5])
	assert.Equal(t, "3.5", resp.Record()[6])
	assert.Equal(t, "Enfermedad", resp.Reason)
}
