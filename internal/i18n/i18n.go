// Package i18n translates reel's user-facing strings. Translations are YAML
// files embedded from the locales directory and loaded into a go-i18n bundle.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init loads every embedded locale and selects lang. Unknown or malformed
// language tags fall back to English.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	current = normalize(lang)
	localizer = i18n.NewLocalizer(bundle, current, language.English.String())
}

// SetLang switches the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language tag.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return current
}

// Available returns the tags of every embedded locale, sorted.
func Available() []string {
	if bundle == nil {
		Init("en")
	}
	tags := bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.String())
	}
	sort.Strings(out)
	return out
}

// T translates messageID. A single map argument is passed as template data;
// any other arguments are applied fmt-style to the translated text. Unknown
// IDs are returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

func normalize(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English.String()
	}
	base, _ := tag.Base()
	return base.String()
}
