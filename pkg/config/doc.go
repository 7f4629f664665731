// Package config loads environment-backed configuration structs for the
// notification core's providers and stores.
//
// Configuration is read once per struct type: the first Load for a type
// parses the environment (after a best-effort .env load for local
// development), later calls return the cached value. Provider selection
// happens through these structs at process start; runtime reconfiguration is
// deliberately unsupported.
//
//	type SMSConfig struct {
//	    Provider  string `env:"NOTIFY_SMS_PROVIDER" envDefault:"dev"`
//	    AuthToken string `env:"NOTIFY_TWILIO_AUTH_TOKEN"`
//	}
//
//	var cfg SMSConfig
//	if err := config.Load(&cfg); err != nil {
//	    // missing required variables, unparseable values
//	}
package config
