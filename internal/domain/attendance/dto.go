package attendance

type StatsResponse struct {
	Today DailyStats `json:"today"`
	Week  []DayStats `json:"week"`
}
