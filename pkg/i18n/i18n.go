package i18n

import (
	"embed"
	"encoding/json"
	"path"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

// Translator renders message ids into the requested language, falling back to the default.
type Translator struct {
	bundle   *goi18n.Bundle
	fallback string
}

// New builds a translator preloaded with the embedded locale files.
func New(defaultLang string) (*Translator, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, errors.Wrapf(err, "parse default language %q", defaultLang)
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		data, err := locales.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return nil, errors.Wrapf(err, "parse %s", e.Name())
		}
	}

	return &Translator{bundle: bundle, fallback: defaultLang}, nil
}

// Load adds an external message file, e.g. active.fr.json.
func (t *Translator) Load(file string) error {
	_, err := t.bundle.LoadMessageFile(file)
	return err
}

// Localize renders messageID. Unknown ids render as the id itself so callers never get an empty string.
func (t *Translator) Localize(lang, messageID string, data map[string]interface{}, count interface{}) string {
	loc := goi18n.NewLocalizer(t.bundle, lang, t.fallback)
	msg, err := loc.Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
		PluralCount:  count,
	})
	if err != nil {
		return messageID
	}
	return msg
}
