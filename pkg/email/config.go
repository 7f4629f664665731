package email

// Supported provider names for Config.Provider.
const (
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

// Config holds email service configuration. The Postmark tokens are optional
// so that development environments can run with the dev provider; the
// postmark provider validates them at construction time.
type Config struct {
	Provider             string `env:"NOTIFY_EMAIL_PROVIDER" envDefault:"dev"`
	PostmarkServerToken  string `env:"NOTIFY_POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"NOTIFY_POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"NOTIFY_SENDER_EMAIL" envDefault:"no-reply@rosterhub.app"`
	SupportEmail         string `env:"NOTIFY_SUPPORT_EMAIL" envDefault:"support@rosterhub.app"`
	DevOutputDir         string `env:"NOTIFY_EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}
