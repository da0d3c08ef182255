package catalog

import "regexp"

// PermissionRule maps a keyword-family pattern to the capability the
// skill appears to require.
type PermissionRule struct {
	Pattern    *regexp.Regexp
	Capability string
}

var permissionRules = []PermissionRule{
	{regexp.MustCompile(`(?i)exec|shell|command|subprocess`), "Shell Access"},
	{regexp.MustCompile(`(?i)file|read|write|fs\.`), "File System Access"},
	{regexp.MustCompile(`(?i)http|fetch|request|axios`), "Network Requests"},
	{regexp.MustCompile(`(?i)browser|puppeteer|playwright`), "Browser Control"},
	{regexp.MustCompile(`(?i)email|smtp|sendmail`), "Email Access"},
	{regexp.MustCompile(`(?i)database|sql|mongo|redis`), "Database Access"},
	{regexp.MustCompile(`(?i)env|environment|process\.env`), "Environment Variables"},
	{regexp.MustCompile(`(?i)cron|schedule|timer`), "Scheduled Tasks"},
}

// Permissions returns the capability signature catalog in declaration order.
func Permissions() []PermissionRule {
	return permissionRules
}
