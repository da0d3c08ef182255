// Package catalog holds the static signature catalogs the content
// scanner runs against skill documentation. Rules are data, not code:
// adding a detection means appending an entry, never touching scanner
// control flow.
package catalog

import (
	"regexp"

	"github.com/nebenzu/skillsafe/models"
)

// ThreatRule pairs a pattern with the finding it produces. Each rule is
// tested against the whole content blob; a rule fires at most once per
// scan regardless of how many times its pattern occurs.
type ThreatRule struct {
	Pattern     *regexp.Regexp
	Category    string
	Severity    models.Severity
	Description string
}

// threatRules is ordered; scan output preserves this order so fixtures
// stay deterministic.
var threatRules = []ThreatRule{
	{regexp.MustCompile(`(?i)curl\s+.*\|\s*sh`), "pipe_to_shell", models.SeverityCritical, "Pipes remote content directly to shell"},
	{regexp.MustCompile(`(?i)curl\s+.*\|\s*bash`), "pipe_to_shell", models.SeverityCritical, "Pipes remote content directly to bash"},
	{regexp.MustCompile(`(?i)wget.*\|\s*sh`), "pipe_to_shell", models.SeverityCritical, "Pipes remote content directly to shell"},
	{regexp.MustCompile(`(?i)pastebin\.com`), "pastebin", models.SeverityHigh, "References pastebin (common malware host)"},
	{regexp.MustCompile(`(?i)eval\s*\(`), "eval", models.SeverityHigh, "Uses eval() which can execute arbitrary code"},
	{regexp.MustCompile(`(?i)base64\s+(-d|--decode)`), "base64_decode", models.SeverityHigh, "Decodes base64 (often used to hide payloads)"},
	{regexp.MustCompile(`(?i)\.ssh/`), "ssh_access", models.SeverityHigh, "Accesses SSH directory"},
	{regexp.MustCompile(`(?i)/etc/passwd`), "passwd_access", models.SeverityCritical, "Accesses system password file"},
	{regexp.MustCompile(`(?i)/etc/shadow`), "shadow_access", models.SeverityCritical, "Accesses system shadow file"},
	{regexp.MustCompile(`(?i)keychain|keyring`), "keychain_access", models.SeverityHigh, "Accesses system keychain"},
	{regexp.MustCompile(`(?i)OPENAI_API_KEY|ANTHROPIC_API_KEY|API_KEY`), "api_key_ref", models.SeverityMedium, "References API keys"},
	{regexp.MustCompile(`(?i)nc\s+-l|netcat`), "netcat", models.SeverityCritical, "Uses netcat (potential reverse shell)"},
	{regexp.MustCompile(`(?i)/dev/tcp/`), "tcp_redirect", models.SeverityCritical, "Uses /dev/tcp (bash network redirect)"},
	{regexp.MustCompile(`(?i)chmod\s+\+x`), "chmod_exec", models.SeverityMedium, "Makes files executable"},
	{regexp.MustCompile(`(?i)rm\s+-rf\s+/`), "destructive_rm", models.SeverityCritical, "Recursive delete from root"},
	{regexp.MustCompile(`(?i)cryptocurrency|bitcoin|ethereum|wallet`), "crypto_ref", models.SeverityMedium, "References cryptocurrency"},
}

// Threats returns the threat signature catalog in declaration order.
func Threats() []ThreatRule {
	return threatRules
}
