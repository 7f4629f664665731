package sms

// Supported provider names for Config.Provider.
const (
	ProviderTwilio = "twilio"
	ProviderDev    = "dev"
)

// Config holds SMS service configuration. Twilio credentials are optional so
// that development environments can run with the dev provider; the twilio
// provider validates them at construction time. Either a from-number or a
// messaging service SID must be present for twilio sends.
type Config struct {
	Provider                  string `env:"NOTIFY_SMS_PROVIDER" envDefault:"dev"`
	TwilioAccountSID          string `env:"NOTIFY_TWILIO_ACCOUNT_SID"`
	TwilioAuthToken           string `env:"NOTIFY_TWILIO_AUTH_TOKEN"`
	TwilioFromNumber          string `env:"NOTIFY_TWILIO_FROM_NUMBER"`
	TwilioMessagingServiceSID string `env:"NOTIFY_TWILIO_MESSAGING_SERVICE_SID"`
	DefaultRegion             string `env:"NOTIFY_SMS_DEFAULT_REGION" envDefault:"US"`
	DevOutputDir              string `env:"NOTIFY_SMS_DEV_DIR" envDefault:"./tmp/sms"`
}
