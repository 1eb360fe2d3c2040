// Package providers forwards completed submissions to the external
// verification providers. Each provider wraps one partner API; the engine
// only sees the VerificationProvider contract.
package providers

import (
	"context"

	"github.com/towoju5/bridge-verification-system-sub001/config"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// VerificationProvider submits a completed record to one partner and
// returns the partner's reference for it.
type VerificationProvider interface {
	Name() string
	Submit(ctx context.Context, snapshot *types.SubmissionSnapshot) (string, error)
}

// NewFromConfig builds the enabled provider set in configured order.
// Unknown names are skipped.
func NewFromConfig(cfg *config.ProviderConfiguration) []VerificationProvider {
	available := map[string]VerificationProvider{
		"bridge":     NewBridgeProvider(cfg.BridgeBaseURL, cfg.BridgeAPIKey, cfg.Timeout),
		"avenia":     NewAveniaProvider(cfg.AveniaBaseURL, cfg.AveniaAPIKey, cfg.Timeout),
		"borderless": NewBorderlessProvider(cfg.BorderlessBaseURL, cfg.BorderlessAPIKey, cfg.Timeout),
		"noah":       NewNoahProvider(cfg.NoahBaseURL, cfg.NoahAPIKey, cfg.Timeout),
		"yellowcard": NewYellowCardProvider(cfg.YellowCardBaseURL, cfg.YellowCardAPIKey, cfg.Timeout),
	}

	enabled := make([]VerificationProvider, 0, len(cfg.Enabled))
	for _, name := range cfg.Enabled {
		if provider, ok := available[name]; ok {
			enabled = append(enabled, provider)
		}
	}
	return enabled
}
