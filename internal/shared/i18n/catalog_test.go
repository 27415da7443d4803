package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestNewCatalog(t *testing.T) {
	t.Run("default locale", func(t *testing.T) {
		assert.Equal(t, language.English, NewCatalog("en").Default())
		assert.Equal(t, language.Korean, NewCatalog("ko").Default())
	})

	t.Run("unparseable default falls back to korean", func(t *testing.T) {
		assert.Equal(t, language.Korean, NewCatalog("not a locale").Default())
	})
}

func TestCatalog_Resolve(t *testing.T) {
	catalog := NewCatalog("ko")

	tests := []struct {
		name           string
		acceptLanguage string
		want           language.Tag
	}{
		{"blank header uses default", "", language.Korean},
		{"exact match", "en", language.English},
		{"regional variant matches base", "en-US", language.English},
		{"korean regional variant", "ko-KR", language.Korean},
		{"quality ordered list", "fr-CH, en;q=0.8, ko;q=0.5", language.English},
		{"unsupported language uses default", "de", language.Korean},
		{"malformed header uses default", ";;;", language.Korean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Resolve(tt.acceptLanguage))
		})
	}
}

func TestCatalog_Message(t *testing.T) {
	catalog := NewCatalog("ko")

	t.Run("substitutes detail", func(t *testing.T) {
		got := catalog.Message(language.English, "104", "authorId[3] not found")
		assert.Equal(t, "The data does not exist. authorId[3] not found", got)
	})

	t.Run("korean template", func(t *testing.T) {
		got := catalog.Message(language.Korean, "103", "email[a@b.com]")
		assert.Equal(t, "이미 데이터가 존재합니다. email[a@b.com]", got)
	})

	t.Run("custom kind passes detail through", func(t *testing.T) {
		got := catalog.Message(language.English, "777", "inventory is closed today")
		assert.Equal(t, "inventory is closed today", got)
	})

	t.Run("server error ignores detail", func(t *testing.T) {
		got := catalog.Message(language.English, "999", "pq: connection refused")
		assert.Equal(t, "An internal server error occurred.", got)
	})

	t.Run("code without a template yields diagnostic", func(t *testing.T) {
		got := catalog.Message(language.English, "888", "")
		assert.Equal(t, "check locale message. invalid code [888]", got)
	})

	t.Run("unknown language falls back to default table", func(t *testing.T) {
		got := catalog.Message(language.German, "104", "bookId[1] not found")
		assert.Equal(t, "데이터가 존재하지 않습니다. bookId[1] not found", got)
	})
}
