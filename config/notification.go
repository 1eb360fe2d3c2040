package config

import (
	"github.com/spf13/viper"
)

// NotificationConfiguration defines the email service configurations
type NotificationConfiguration struct {
	EmailDomain      string
	EmailAPIKey      string
	EmailFromAddress string
	EmailEnabled     bool
}

// NotificationConfig sets the email configurations
func NotificationConfig() (config *NotificationConfiguration) {
	viper.SetDefault("EMAIL_DOMAIN", "api.sendgrid.com")
	viper.SetDefault("EMAIL_FROM_ADDRESS", "Verification <no-reply@example.com>")
	viper.SetDefault("EMAIL_ENABLED", false)

	return &NotificationConfiguration{
		EmailDomain:      viper.GetString("EMAIL_DOMAIN"),
		EmailAPIKey:      viper.GetString("EMAIL_API_KEY"),
		EmailFromAddress: viper.GetString("EMAIL_FROM_ADDRESS"),
		EmailEnabled:     viper.GetBool("EMAIL_ENABLED"),
	}
}
