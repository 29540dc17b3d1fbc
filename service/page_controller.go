package services

import (
	"context"
	"log"
	"time"

	"code.cloudfoundry.org/clock"
	"golang.org/x/sync/singleflight"

	"weather-dash/dashboard"
	"weather-dash/models"
	"weather-dash/models/forecast"
)

// PageController drives one dashboard page load: it joins or starts the fetch
// for a query and reports the fetch state at the render deadline.
type PageController struct {
	forecastService *ForecastService
	group           singleflight.Group
	renderDeadline  time.Duration
	fetchTimeout    time.Duration
	clock           clock.Clock
}

func NewPageController(forecastService *ForecastService, renderDeadline, fetchTimeout time.Duration, clk clock.Clock) *PageController {
	if clk == nil {
		clk = clock.NewClock()
	}
	return &PageController{
		forecastService: forecastService,
		renderDeadline:  renderDeadline,
		fetchTimeout:    fetchTimeout,
		clock:           clk,
	}
}

// Load returns Ready or Failed once the fetch for q settles, or Pending if it
// has not settled by the render deadline. A pending fetch keeps running on its
// own timeout and lands in the cache for the next request.
func (pc *PageController) Load(ctx context.Context, q models.ForecastQuery) dashboard.Result {
	ch := pc.group.DoChan(q.Key(), func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.Background(), pc.fetchTimeout)
		defer cancel()
		return pc.forecastService.GetForecast(fetchCtx, q)
	})

	timer := pc.clock.NewTimer(pc.renderDeadline)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.Err != nil {
			log.Printf("[PageController] Fetch for %s failed: %v", q, res.Err)
			return dashboard.FailedResult(res.Err)
		}
		payload, _ := res.Val.(*forecast.Payload)
		return dashboard.ReadyResult(payload)
	case <-timer.C():
		log.Printf("[PageController] Fetch for %s still running after %s, rendering loading page", q, pc.renderDeadline)
		return dashboard.PendingResult()
	case <-ctx.Done():
		return dashboard.PendingResult()
	}
}
