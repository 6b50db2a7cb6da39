package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsBlank(t *testing.T) {
	blank := "  \t"
	text := "hola"
	assert.True(t, IsBlank(nil))
	assert.True(t, IsBlank(&blank))
	assert.False(t, IsBlank(&text))
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", "2023-02-29", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestExceedsRunes(t *testing.T) {
	assert.False(t, ExceedsRunes("áéíóú", 5))
	assert.True(t, ExceedsRunes("áéíóúñ", 5))
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestTrimToNil(t *testing.T) {
	blank := "   "
	padded := "  texto  "
	assert.Nil(t, TrimToNil(nil))
	assert.Nil(t, TrimToNil(&blank))
	require.NotNil(t, TrimToNil(&padded))
	assert.Equal(t, "texto", *TrimToNil(&padded))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "invalid"},
		{Field: "records", Message: "required"},
	}
	got := errs.Error()
	want := "date: invalid; records: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "invalid"},
		{Field: "records", Message: "required"},
		{Field: "date", Message: "second message"},
	}
	got := errs.ToMap()
	assert.Equal(t, map[string]string{"date": "invalid", "records": "required"}, got)
}

func TestValidationErrors_OrNil(t *testing.T) {
	var errs ValidationErrors
	assert.NoError(t, errs.OrNil())

	errs.Add("date", "date es obligatorio")
	err := errs.OrNil()
	require.Error(t, err)
	var ve ValidationErrors
	assert.ErrorAs(t, err, &ve)
}

type structSample struct {
	Name     string       `json:"name" validate:"required,max=5"`
	State    string       `json:"state" validate:"oneof=active inactive"`
	Day      string       `json:"day" validate:"required,datetime=2006-01-02"`
	Comments *string      `json:"comments" validate:"omitempty,max=3"`
	Items    []structItem `json:"items" validate:"min=1,dive"`
}

type structItem struct {
	EmployeeID int64 `json:"employee_id" validate:"gt=0"`
}

func TestStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ok := structSample{Name: "ana", State: "active", Day: "2024-01-15", Items: []structItem{{EmployeeID: 1}}}
		assert.NoError(t, Struct(ok))
	})

	t.Run("field paths and messages", func(t *testing.T) {
		long := "abcd"
		bad := structSample{Name: "", State: "open", Day: "15/01/2024", Comments: &long, Items: []structItem{{EmployeeID: 1}, {EmployeeID: 0}}}
		err := Struct(bad)
		require.Error(t, err)

		var ve ValidationErrors
		require.ErrorAs(t, err, &ve)
		m := ve.ToMap()
		assert.Equal(t, "name es obligatorio", m["name"])
		assert.Equal(t, "state debe ser uno de: active, inactive", m["state"])
		assert.Equal(t, "day debe tener el formato YYYY-MM-DD", m["day"])
		assert.Equal(t, "comments no debe exceder 3 caracteres", m["comments"])
		assert.Equal(t, "employee_id debe ser mayor que 0", m["items.1.employee_id"])
	})

	t.Run("empty slice", func(t *testing.T) {
		err := Struct(structSample{Name: "a", State: "active", Day: "2024-01-15"})
		var ve ValidationErrors
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.ToMap(), "items")
	})

	t.Run("whitespace is blank", func(t *testing.T) {
		type named struct {
			Username string `json:"username" validate:"required,notblank"`
		}
		err := Struct(named{Username: "   "})
		var ve ValidationErrors
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "username es obligatorio", ve.ToMap()["username"])
		assert.NoError(t, Struct(named{Username: "ana"}))
	})
}
