package fiber

type CountCardResponse struct {
	Value   int64  `json:"value" example:"1234"`
	Display string `json:"display" example:"1,234"`
}

type RatioCardResponse struct {
	Value   float64 `json:"value" example:"2.5"`
	Display string  `json:"display" example:"2.50"`
}

type CardsResponse struct {
	TotalUsers            CountCardResponse `json:"total_users"`
	TotalRemindsCreated   CountCardResponse `json:"total_reminds_created"`
	TotalRemindsSent      CountCardResponse `json:"total_reminds_sent"`
	PerUserRemindsCreated RatioCardResponse `json:"per_user_reminds_created"`
	PerUserRemindsSent    RatioCardResponse `json:"per_user_reminds_sent"`
}

type SeriesPointResponse struct {
	Label string `json:"label" example:"2024-03-07"`
	Count int64  `json:"count" example:"12"`
}

type ComparisonPointResponse struct {
	Label   string `json:"label" example:"2024-03"`
	Created int64  `json:"created" example:"40"`
	Sent    int64  `json:"sent" example:"31"`
}

// ChartsResponse holds the four dashboard charts for the selected view.
type ChartsResponse struct {
	LabelField     string                    `json:"label_field" example:"date_time"`
	Users          []SeriesPointResponse     `json:"users"`
	RemindsCreated []SeriesPointResponse     `json:"reminds_created"`
	RemindsSent    []SeriesPointResponse     `json:"reminds_sent"`
	Comparison     []ComparisonPointResponse `json:"comparison"`
}

type AveragesResponse struct {
	DailyUsers                   float64 `json:"daily_users"`
	DailyRemindsCreated          float64 `json:"daily_reminds_created"`
	DailyRemindsSent             float64 `json:"daily_reminds_sent"`
	MonthlyUsers                 float64 `json:"monthly_users"`
	MonthlyRemindsCreated        float64 `json:"monthly_reminds_created"`
	MonthlyRemindsSent           float64 `json:"monthly_reminds_sent"`
	PerUserDailyRemindsCreated   float64 `json:"per_user_daily_reminds_created"`
	PerUserDailyRemindsSent      float64 `json:"per_user_daily_reminds_sent"`
	PerUserMonthlyRemindsCreated float64 `json:"per_user_monthly_reminds_created"`
	PerUserMonthlyRemindsSent    float64 `json:"per_user_monthly_reminds_sent"`
}

type GranularitySeriesResponse struct {
	Users          []SeriesPointResponse `json:"users"`
	RemindsCreated []SeriesPointResponse `json:"reminds_created"`
	RemindsSent    []SeriesPointResponse `json:"reminds_sent"`
}

type AllSeriesResponse struct {
	Daily   GranularitySeriesResponse `json:"daily"`
	Monthly GranularitySeriesResponse `json:"monthly"`
}

type MetricsResponse struct {
	StartDate      string            `json:"start_date" example:"2024-03-01"`
	EndDate        string            `json:"end_date" example:"2024-03-31"`
	ViewMode       string            `json:"view_mode" example:"daily"`
	Cards          CardsResponse     `json:"cards"`
	Charts         ChartsResponse    `json:"charts"`
	Averages       AveragesResponse  `json:"averages"`
	Series         AllSeriesResponse `json:"series"`
	UnbucketedRows int64             `json:"unbucketed_rows"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message,omitempty" example:"invalid view_mode, expected daily or monthly"`
}
