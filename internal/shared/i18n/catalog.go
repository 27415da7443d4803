// Package i18n resolves localized error messages by (error code, locale).
// It is a plain code→template table; the template receives the contextual
// detail supplied by the failure site.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// templates per language. Code 888 is reserved and deliberately has no
// entry in any language, so it always resolves to the diagnostic fallback.
var messages = map[language.Tag]map[string]string{
	language.Korean: {
		"100": "필수 입력값이 누락되었습니다. %s",
		"101": "입력값이 올바르지 않습니다. %s",
		"102": "요청 데이터 포맷이 올바르지 않습니다. %s",
		"103": "이미 데이터가 존재합니다. %s",
		"104": "데이터가 존재하지 않습니다. %s",
		"777": "%s",
		"999": "내부 서버 에러가 발생했습니다.",
	},
	language.English: {
		"100": "A required value is missing. %s",
		"101": "The input value is not valid. %s",
		"102": "The request data format is not valid. %s",
		"103": "The data already exists. %s",
		"104": "The data does not exist. %s",
		"777": "%s",
		"999": "An internal server error occurred.",
	},
}

// Catalog matches requested locales against the supported ones and renders
// message templates. A lookup miss never fails; it yields a diagnostic
// string naming the missing code.
type Catalog struct {
	supported  []language.Tag
	matcher    language.Matcher
	defaultTag language.Tag
}

// NewCatalog builds a catalog whose first-choice language is defaultLocale
// (BCP 47, e.g. "ko" or "en"). An unparseable default falls back to Korean,
// the default of the reference deployment.
func NewCatalog(defaultLocale string) *Catalog {
	defaultTag, err := language.Parse(defaultLocale)
	if err != nil {
		defaultTag = language.Korean
	}

	supported := []language.Tag{defaultTag}
	for tag := range messages {
		if tag != defaultTag {
			supported = append(supported, tag)
		}
	}

	return &Catalog{
		supported:  supported,
		matcher:    language.NewMatcher(supported),
		defaultTag: defaultTag,
	}
}

// Resolve picks the best supported language for an Accept-Language header.
// A blank or malformed header resolves to the default language.
func (c *Catalog) Resolve(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return c.defaultTag
	}
	_, idx := language.MatchStrings(c.matcher, acceptLanguage)
	return c.supported[idx]
}

// Default returns the catalog's default language.
func (c *Catalog) Default() language.Tag {
	return c.defaultTag
}

// Message renders the template registered for code in the given language,
// substituting detail. A missing template resolves to a fixed diagnostic
// instead of an error, so rendering a failure can itself never fail.
func (c *Catalog) Message(tag language.Tag, code, detail string) string {
	table, ok := messages[tag]
	if !ok {
		table = messages[c.defaultTag]
	}

	template, ok := table[code]
	if !ok {
		return fmt.Sprintf("check locale message. invalid code [%s]", code)
	}

	if !strings.Contains(template, "%s") {
		return template
	}
	return fmt.Sprintf(template, detail)
}
