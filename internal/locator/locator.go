// Package locator resolves user-supplied skill references to an
// (owner, repo) pair. Accepted forms, in priority order:
//
//	https://github.com/owner/repo[/...]
//	https://clawhub.com/skills/owner/repo
//	owner/repo
package locator

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidLocator is returned when the input matches none of the
// recognised locator forms.
var ErrInvalidLocator = errors.New("invalid skill locator")

// Locator is a normalised skill reference.
type Locator struct {
	// Host is the hosting platform the locator named (e.g. "github.com").
	// Empty for marketplace URLs and bare owner/repo shorthand.
	Host  string
	Owner string
	Repo  string
}

type rule struct {
	re        *regexp.Regexp
	hostGroup int // submatch index of the host, 0 when the form has none
}

// Recognition rules, tried in order; the first match wins. Host names
// match case-insensitively, owner and repo are case-sensitive.
var rules = []rule{
	{re: regexp.MustCompile(`(?i:(github\.com|gitlab\.com))/([^/]+)/([^/]+)`), hostGroup: 1},
	{re: regexp.MustCompile(`(?i:clawhub\.com)/skills/([^/]+)/([^/]+)`)},
	{re: regexp.MustCompile(`^([^/]+)/([^/]+)$`)},
}

// Parse resolves input to a Locator. A trailing ".git" on the repository
// name is stripped. Returns ErrInvalidLocator when no form matches.
func Parse(input string) (Locator, error) {
	for _, r := range rules {
		m := r.re.FindStringSubmatch(input)
		if m == nil {
			continue
		}
		loc := Locator{
			Owner: m[r.hostGroup+1],
			Repo:  strings.TrimSuffix(m[r.hostGroup+2], ".git"),
		}
		if r.hostGroup > 0 {
			loc.Host = strings.ToLower(m[r.hostGroup])
		}
		return loc, nil
	}
	return Locator{}, ErrInvalidLocator
}

// String returns the canonical owner/repo form.
func (l Locator) String() string {
	return l.Owner + "/" + l.Repo
}
