package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logRefresher logs refresher events with timestamp
func logRefresher(message string) {
	log.Printf("[KPI-REFRESHER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartKPIRefresher runs refresh on the given cron spec so the analyst
// KPI cards stay near real time. The returned cron owns the schedule;
// call Stop on it during shutdown.
func StartKPIRefresher(spec string, refresh func()) (*cron.Cron, error) {
	logRefresher("Initializing KPI refresher...")

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		refresh()
		logRefresher("KPI slices refreshed")
	}); err != nil {
		return nil, err
	}
	c.Start()

	logRefresher("KPI refresher started - spec " + spec)
	return c, nil
}
