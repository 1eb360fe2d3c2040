package tasks

import (
	"context"
	"time"

	"github.com/towoju5/bridge-verification-system-sub001/services/refdata"
	"github.com/towoju5/bridge-verification-system-sub001/storage"
	"github.com/towoju5/bridge-verification-system-sub001/utils/logger"
)

// RetryPendingForwarding replays submitted records whose provider
// forwarding has not fully succeeded. Providers that already accepted a
// record are skipped by the engine, so replaying is safe, and records
// with nothing outstanding are a no-op.
func RetryPendingForwarding() error {
	if engine == nil || storage.GetClient() == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store := storage.NewSubmissionStore(storage.GetClient())
	since := time.Now().Add(-7 * 24 * time.Hour)
	candidates, err := store.ListForwardingRetryCandidates(ctx, since, 50)
	if err != nil {
		logger.Errorf("RetryPendingForwarding failed to list candidates: %v", err)
		return err
	}

	for _, id := range candidates {
		if err := engine.RetryForwarding(ctx, id); err != nil {
			logger.WithFields(logger.Fields{
				"SubmissionID": id,
				"Error":        err.Error(),
			}).Errorf("Forwarding retry failed")
		}
	}
	return nil
}

// WarmReferenceDataCache touches every reference list so the redis cache
// stays populated ahead of wizard traffic.
func WarmReferenceDataCache() {
	if refdataProvider == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lists := []string{
		refdata.ListCountries,
		refdata.ListOccupations,
		refdata.ListPurposes,
		refdata.ListSourcesOfFunds,
		refdata.ListEntityTypes,
		refdata.ListIdentificationType,
		refdata.ListHighRiskActivities,
		refdata.ListEndorsements,
	}
	for _, list := range lists {
		if _, err := refdataProvider.Lookup(ctx, list); err != nil {
			logger.Warnf("WarmReferenceDataCache lookup %s: %v", list, err)
		}
	}
}
