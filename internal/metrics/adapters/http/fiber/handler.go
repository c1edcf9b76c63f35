package fiber

import (
	"context"
	"errors"
	"log"
	"net/http"

	"reminder-metrics-service/internal/metrics/core/domain"
	"reminder-metrics-service/internal/metrics/core/usecase"
	reminderUsecase "reminder-metrics-service/internal/reminders/core/usecase"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"
)

type GetMetricsUseCase interface {
	Execute(ctx context.Context, in usecase.GetMetricsInput) (*usecase.MetricsReport, error)
}

type MetricsHandler struct {
	uc GetMetricsUseCase
}

func NewMetricsHandler(uc GetMetricsUseCase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

// labelFields keeps the dashboard's column names per view.
var labelFields = map[domain.Granularity]string{
	domain.Daily:   "date_time",
	domain.Monthly: "month",
}

// GetMetrics godoc
// @Summary Reminder usage metrics
// @Description Totals, daily/monthly series, averages and the created-vs-sent comparison for a date range
// @Tags Metrics
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD), defaults to today-30d"
// @Param end_date query string false "End date (YYYY-MM-DD, inclusive), defaults to today"
// @Param view_mode query string false "View mode: daily | monthly"
// @Success 200 {object} MetricsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics [get]
func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	in := usecase.GetMetricsInput{
		StartDate: c.Query("start_date", ""),
		EndDate:   c.Query("end_date", ""),
		ViewMode:  c.Query("view_mode", ""),
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidViewMode):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		case errors.Is(err, reminderUsecase.ErrSourceUnavailable):
			log.Printf("[%s] metrics query failed: %v", requestID(c), err)
			return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
				Error:   "source_unavailable",
				Message: "reminder store query failed",
			})
		default:
			log.Printf("[%s] metrics query failed: %v", requestID(c), err)
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toMetricsResponse(res))
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "-"
}

func toMetricsResponse(res *usecase.MetricsReport) MetricsResponse {
	b := res.Bundle
	view := b.View(res.ViewMode)

	return MetricsResponse{
		StartDate: res.StartDate,
		EndDate:   res.EndDate,
		ViewMode:  string(res.ViewMode),
		Cards: CardsResponse{
			TotalUsers:            countCard(b.TotalUsers),
			TotalRemindsCreated:   countCard(b.TotalRemindsCreated),
			TotalRemindsSent:      countCard(b.TotalRemindsSent),
			PerUserRemindsCreated: ratioCard(b.PerUserRemindsCreated),
			PerUserRemindsSent:    ratioCard(b.PerUserRemindsSent),
		},
		Charts: ChartsResponse{
			LabelField:     labelFields[res.ViewMode],
			Users:          toSeries(view.Users),
			RemindsCreated: toSeries(view.RemindsCreated),
			RemindsSent:    toSeries(view.RemindsSent),
			Comparison:     toComparison(domain.JoinComparison(view.RemindsCreated, view.RemindsSent)),
		},
		Averages: AveragesResponse{
			DailyUsers:                   b.Daily.AverageUsers,
			DailyRemindsCreated:          b.Daily.AverageRemindsCreated,
			DailyRemindsSent:             b.Daily.AverageRemindsSent,
			MonthlyUsers:                 b.Monthly.AverageUsers,
			MonthlyRemindsCreated:        b.Monthly.AverageRemindsCreated,
			MonthlyRemindsSent:           b.Monthly.AverageRemindsSent,
			PerUserDailyRemindsCreated:   b.Daily.AveragePerUserRemindsCreated,
			PerUserDailyRemindsSent:      b.Daily.AveragePerUserRemindsSent,
			PerUserMonthlyRemindsCreated: b.Monthly.AveragePerUserRemindsCreated,
			PerUserMonthlyRemindsSent:    b.Monthly.AveragePerUserRemindsSent,
		},
		Series: AllSeriesResponse{
			Daily:   toGranularitySeries(b.Daily),
			Monthly: toGranularitySeries(b.Monthly),
		},
		UnbucketedRows: b.UnbucketedRows,
	}
}

func countCard(v int64) CountCardResponse {
	return CountCardResponse{Value: v, Display: humanize.Comma(v)}
}

func ratioCard(v float64) RatioCardResponse {
	return RatioCardResponse{Value: v, Display: humanize.FormatFloat("#,###.##", v)}
}

func toGranularitySeries(st domain.GranularityStats) GranularitySeriesResponse {
	return GranularitySeriesResponse{
		Users:          toSeries(st.Users),
		RemindsCreated: toSeries(st.RemindsCreated),
		RemindsSent:    toSeries(st.RemindsSent),
	}
}

func toSeries(s domain.Series) []SeriesPointResponse {
	out := make([]SeriesPointResponse, 0, len(s))
	for _, p := range s {
		out = append(out, SeriesPointResponse{Label: p.Label, Count: p.Count})
	}
	return out
}

func toComparison(points []domain.ComparisonPoint) []ComparisonPointResponse {
	out := make([]ComparisonPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, ComparisonPointResponse{Label: p.Label, Created: p.Created, Sent: p.Sent})
	}
	return out
}
