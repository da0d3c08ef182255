package config

// Config is the root configuration structure for skillsafe.
// Serialised to ~/.skillsafe/config.json.
type Config struct {
	Git     GitConfig     `mapstructure:"git"     json:"git"`
	Analyze AnalyzeConfig `mapstructure:"analyze" json:"analyze"`
	Gateway GatewayConfig `mapstructure:"gateway" json:"gateway"`
	Watch   WatchConfig   `mapstructure:"watch"   json:"watch"`
	Notify  NotifyConfig  `mapstructure:"notify"  json:"notify"`
}

// GitConfig holds credentials for each supported git hosting platform.
type GitConfig struct {
	GitHub []GitHubConfig `mapstructure:"github" json:"github"`
	GitLab []GitLabConfig `mapstructure:"gitlab" json:"gitlab"`
}

// GitHubConfig holds credentials for a single GitHub instance.
// An empty token is valid: the provider then runs unauthenticated with
// GitHub's anonymous rate limits.
type GitHubConfig struct {
	Token string `mapstructure:"token" json:"token"`
	// Host allows enterprise GitHub (e.g. github.mycompany.com).
	Host string `mapstructure:"host"  json:"host"`
}

// GitLabConfig holds credentials for a single GitLab instance.
type GitLabConfig struct {
	Token string `mapstructure:"token" json:"token"`
	Host  string `mapstructure:"host"  json:"host"`
}

// AnalyzeConfig controls how skills are analysed.
type AnalyzeConfig struct {
	// DocFile is the documentation file fetched from the repository root.
	DocFile string `mapstructure:"doc_file" json:"doc_file"`
	// Provider is the default platform when a locator names no host.
	Provider string `mapstructure:"provider" json:"provider"`
}

// GatewayConfig controls the HTTP API daemon.
type GatewayConfig struct {
	// Port is the localhost HTTP port the gateway listens on (default: 6810).
	Port int `mapstructure:"port" json:"port"`
}

// WatchConfig controls periodic re-analysis of known skills.
type WatchConfig struct {
	// Skills is a list of locators re-analysed on every tick.
	Skills []string `mapstructure:"skills" json:"skills"`
	// Expr is the cron expression driving re-analysis (default: hourly).
	Expr string `mapstructure:"expr" json:"expr"`
}

// NotifyConfig holds the notification channel settings.
type NotifyConfig struct {
	Webhook WebhookNotifyConfig `mapstructure:"webhook" json:"webhook"`
	Slack   SlackNotifyConfig   `mapstructure:"slack"   json:"slack"`
}

// WebhookNotifyConfig configures the generic HTTP webhook channel.
type WebhookNotifyConfig struct {
	URL string `mapstructure:"url" json:"url"`
	// Secret enables HMAC-SHA256 signing of the payload when set.
	Secret string `mapstructure:"secret" json:"secret"`
}

// SlackNotifyConfig configures the Slack incoming-webhook channel.
type SlackNotifyConfig struct {
	WebhookURL string `mapstructure:"webhook_url" json:"webhook_url"`
}
