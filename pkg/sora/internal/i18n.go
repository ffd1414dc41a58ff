package internal

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	i18nMu    sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	locale    = language.English
)

// InitI18n loads the embedded message files and selects locale, falling
// back to English for unknown tags and missing messages.
func InitI18n(tag string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return fmt.Errorf("read locales: %w", err)
	}
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := b.ParseMessageFileBytes(data, name); err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
	}

	selected := language.English
	if tag != "" {
		parsed, err := language.Parse(tag)
		if err != nil {
			GetInternalLogger().Warn("Unknown locale; using English", "locale", tag, "error", err)
		} else {
			selected = parsed
		}
	}

	i18nMu.Lock()
	defer i18nMu.Unlock()
	bundle = b
	locale = selected
	localizer = i18n.NewLocalizer(b, selected.String(), language.English.String())
	return nil
}

// Locale returns the selected language tag.
func Locale() language.Tag {
	i18nMu.RLock()
	defer i18nMu.RUnlock()
	return locale
}

// Localize returns the message for id, or id itself when it is unknown.
func Localize(id string) string {
	return LocalizeWith(id, nil)
}

// LocalizeWith fills the message template with data.
func LocalizeWith(id string, data map[string]any) string {
	i18nMu.RLock()
	l := localizer
	i18nMu.RUnlock()

	if l == nil {
		return id
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// LocalizePlural picks the plural form for count. Templates can refer to
// {{.Count}} as well as to data.
func LocalizePlural(id string, count int, data map[string]any) string {
	i18nMu.RLock()
	l := localizer
	i18nMu.RUnlock()

	if l == nil {
		return id
	}
	fields := map[string]any{"Count": count}
	for k, v := range data {
		fields[k] = v
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: fields, PluralCount: count})
	if err != nil || msg == "" {
		return id
	}
	return msg
}
