// Package locale holds the user-facing menu messages for each supported language.
package locale

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var bundles embed.FS

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Japanese,
}

var matcher = language.NewMatcher(supported)

// Messages are the localized strings shown around the menus
type Messages struct {
	Lang           string `yaml:"-"`
	Welcome        string `yaml:"welcome"`
	Title          string `yaml:"title"`
	RootPrompt     string `yaml:"root_prompt"`
	CategoryPrompt string `yaml:"category_prompt"`
	LeafPrompt     string `yaml:"leaf_prompt"`
	HelpMissing    string `yaml:"help_missing"`
}

// CategoryMessage formats the category question for the given category title
func (m *Messages) CategoryMessage(title string) string {
	return fmt.Sprintf(m.CategoryPrompt, title)
}

// LeafMessage formats the outputs question for the given pattern name
func (m *Messages) LeafMessage(pattern string) string {
	return fmt.Sprintf(m.LeafPrompt, pattern)
}

// HelpMissingMessage formats the notice printed when a help entry is absent
func (m *Messages) HelpMissingMessage(topic string) string {
	return fmt.Sprintf(m.HelpMissing, topic)
}

// Load returns the messages for a POSIX locale string such as "ja_JP.UTF-8".
// Unsupported or empty values fall back to English.
func Load(lang string) (*Messages, error) {
	base := Match(lang)

	data, err := bundles.ReadFile("locales/" + base + ".yaml")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read locale %s", base)
	}

	var m Messages
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "failed to parse locale %s", base)
	}
	m.Lang = base

	return &m, nil
}

// Match reduces a POSIX locale string to the base language of the closest supported bundle
func Match(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" || lang == "C" || lang == "POSIX" {
		return fallback()
	}

	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return fallback()
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return fallback()
	}
	b, _ := supported[index].Base()
	return b.String()
}

func fallback() string {
	b, _ := supported[0].Base()
	return b.String()
}
