package attendance

// DailyStats is the share of employees who logged worked hours on one date.
type DailyStats struct {
	Date               string  `json:"date"`
	TotalEmployees     int64   `json:"total_employees"`
	EmployeesWithHours int64   `json:"employees_with_hours"`
	Percentage         float64 `json:"percentage"`
}

// DayStats is a DailyStats labelled with its Spanish weekday.
type DayStats struct {
	DailyStats
	WeekdayName  string `json:"weekday_name"`
	WeekdayShort string `json:"weekday_short"`
}

// Weekday names indexed by time.Weekday (Sunday = 0).
var (
	WeekdayNames  = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}
	WeekdayShorts = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}
)
