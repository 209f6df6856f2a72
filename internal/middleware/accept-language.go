package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const LangKey = "lang"

var supportedLangs = map[string]bool{"en": true, "de": true}

// AcceptLanguage picks the response language from the Accept-Language
// header. Only the primary subtag is considered, unknown languages fall
// back to English.
func AcceptLanguage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := "en"

		header := c.Get("Accept-Language")
		if header != "" {
			primary := strings.TrimSpace(strings.Split(header, ",")[0])
			primary = strings.ToLower(strings.Split(primary, "-")[0])
			if supportedLangs[primary] {
				lang = primary
			}
		}

		c.Locals(LangKey, lang)
		return c.Next()
	}
}
