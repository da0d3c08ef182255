package locator

import (
	"errors"
	"testing"
)

func TestParseRecognisedForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Locator
	}{
		{"github url", "https://github.com/alice/weather-skill", Locator{Host: "github.com", Owner: "alice", Repo: "weather-skill"}},
		{"github url with extra path", "https://github.com/alice/weather-skill/tree/main/docs", Locator{Host: "github.com", Owner: "alice", Repo: "weather-skill"}},
		{"github url uppercase host", "https://GitHub.com/alice/weather-skill", Locator{Host: "github.com", Owner: "alice", Repo: "weather-skill"}},
		{"github url with .git", "https://github.com/alice/weather-skill.git", Locator{Host: "github.com", Owner: "alice", Repo: "weather-skill"}},
		{"gitlab url", "https://gitlab.com/bob/mail-skill", Locator{Host: "gitlab.com", Owner: "bob", Repo: "mail-skill"}},
		{"marketplace url", "https://clawhub.com/skills/alice/weather-skill", Locator{Owner: "alice", Repo: "weather-skill"}},
		{"bare shorthand", "alice/weather-skill", Locator{Owner: "alice", Repo: "weather-skill"}},
		{"bare shorthand with .git", "alice/weather-skill.git", Locator{Owner: "alice", Repo: "weather-skill"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRejectsInvalidInput(t *testing.T) {
	for _, input := range []string{
		"",
		"just-a-name",
		"a/b/c",
		"https://example.com",
	} {
		if _, err := Parse(input); !errors.Is(err, ErrInvalidLocator) {
			t.Fatalf("Parse(%q) = %v, want ErrInvalidLocator", input, err)
		}
	}
}

func TestParseOwnerAndRepoAreCaseSensitive(t *testing.T) {
	got, err := Parse("Alice/Weather-Skill")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got.Owner != "Alice" || got.Repo != "Weather-Skill" {
		t.Fatalf("owner/repo case was not preserved: %+v", got)
	}
}

func TestParseHostingURLWinsOverShorthand(t *testing.T) {
	// A hosting URL also containing a bare owner/repo segment must be
	// parsed by the first rule, not the shorthand.
	got, err := Parse("github.com/alice/weather-skill")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got.Host != "github.com" {
		t.Fatalf("expected hosting-URL rule to win, got %+v", got)
	}
}
