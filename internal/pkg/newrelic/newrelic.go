package newrelic

import (
	"log"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/nycrides/tripcast/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application based on configuration.
// Returns nil when New Relic is disabled; all helpers tolerate a nil app.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		log.Printf("Failed to initialize New Relic, continuing without it: %v", err)
		return nil
	}

	return nrApp
}
