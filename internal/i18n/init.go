package i18n

import (
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Supported lists the locales the todo API ships bundles for. The first
// entry is the fallback for unmatched Accept-Language values.
var Supported = []language.Tag{language.English, language.German}

type Service interface {
	T(lang string, key string, params map[string]any) string
}

type I18nService struct {
	bundle *i18n.Bundle
}

// NewI18nService loads one <lang>.json message file per supported locale
// from dir. Missing bundles are a startup error, not a runtime one.
func NewI18nService(dir string) *I18nService {
	bundle := i18n.NewBundle(Supported[0])
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, tag := range Supported {
		bundle.MustLoadMessageFile(filepath.Join(dir, tag.String()+".json"))
	}

	return &I18nService{bundle: bundle}
}

func (s *I18nService) T(lang string, key string, params map[string]any) string {
	localizer := i18n.NewLocalizer(s.bundle, lang)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: params,
	})

	if err != nil {
		return key
	}

	return msg
}
