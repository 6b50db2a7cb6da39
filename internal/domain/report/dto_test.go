package report

import (
	"testing"

	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStateRequest_Validate(t *testing.T) {
	for _, state := range []State{StateActive, StateInactive} {
		assert.NoError(t, (&UpdateStateRequest{ID: 1, State: state}).Validate())
	}

	for _, state := range []State{"archived", ""} {
		var ve validator.ValidationErrors
		require.ErrorAs(t, (&UpdateStateRequest{ID: 1, State: state}).Validate(), &ve)
		assert.Contains(t, ve.ToMap(), "state")
	}
}

func TestReport_Open(t *testing.T) {
	var missing *Report
	assert.False(t, missing.Open())
	assert.True(t, (&Report{State: StateActive}).Open())
	assert.False(t, (&Report{State: StateInactive}).Open())
}

func TestGenerateRequest_Validate(t *testing.T) {
	t.Run("comments are trimmed", func(t *testing.T) {
		comments := "  cierre de planilla  "
		req := GenerateRequest{Date: "2024-01-15", Comments: &comments}
		require.NoError(t, req.Validate())
		require.NotNil(t, req.Comments)
		assert.Equal(t, "cierre de planilla", *req.Comments)
	})

	t.Run("blank comments become nil", func(t *testing.T) {
		comments := "   "
		req := GenerateRequest{Date: "2024-01-15", Comments: &comments}
		require.NoError(t, req.Validate())
		assert.Nil(t, req.Comments)
	})

	t.Run("invalid state and date", func(t *testing.T) {
		state := State("archived")
		req := GenerateRequest{Date: "15-01-2024", State: &state}
		var ve validator.ValidationErrors
		require.ErrorAs(t, req.Validate(), &ve)
		assert.Contains(t, ve.ToMap(), "date")
		assert.Contains(t, ve.ToMap(), "state")
	})
}

func TestUpdateStateRequest_ValidateInvalidStates(t *testing.T) {
	assert.NoError(t, (&UpdateStateRequest{ID: 1, State: StateInactive}).Validate())
	assert.Error(t, (&UpdateStateRequest{ID: 1, State: "closed"}).Validate())
	assert.Error(t, (&UpdateStateRequest{ID: 1}).Validate())
}
