// Package tasks runs the background jobs of the verification service.
package tasks

import (
	"time"

	"github.com/go-co-op/gocron"
	"github.com/towoju5/bridge-verification-system-sub001/services/refdata"
	"github.com/towoju5/bridge-verification-system-sub001/services/submission"
	"github.com/towoju5/bridge-verification-system-sub001/utils/logger"
)

var (
	engine          *submission.Engine
	refdataProvider refdata.Provider
)

// StartCronJobs schedules the background jobs over the wired engine.
func StartCronJobs(eng *submission.Engine, refd refdata.Provider) {
	engine = eng
	refdataProvider = refd

	scheduler := gocron.NewScheduler(time.Local)

	// Replay partially forwarded submissions every 10 minutes
	_, err := scheduler.Every(10).Minutes().Do(RetryPendingForwarding)
	if err != nil {
		logger.Errorf("StartCronJobs for RetryPendingForwarding: %v", err)
	}

	// Keep the reference-data cache warm every 6 hours
	_, err = scheduler.Every(6).Hours().Do(WarmReferenceDataCache)
	if err != nil {
		logger.Errorf("StartCronJobs for WarmReferenceDataCache: %v", err)
	}

	scheduler.StartAsync()
}
