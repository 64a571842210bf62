// Package locale resolves the language and text direction of a request and
// formats numbers for display in that language.
package locale

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Direction is the text direction of a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Supported language codes.
const (
	English = "en"
	Arabic  = "ar"
)

// CookieName is the cookie that remembers an explicit language choice.
const CookieName = "lang"

// Locale is the resolved language of a request. It is passed explicitly
// through the request context.
type Locale struct {
	Language  string    `json:"language"`
	Direction Direction `json:"direction"`
}

// Default is the fallback locale.
var Default = Locale{Language: English, Direction: LTR}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Arabic,
})

// New returns the locale of a supported language code. Unknown codes yield
// Default and false.
func New(code string) (Locale, bool) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case English:
		return Locale{Language: English, Direction: LTR}, true
	case Arabic:
		return Locale{Language: Arabic, Direction: RTL}, true
	default:
		return Default, false
	}
}

// IsRTL reports whether text in the locale runs right to left.
func (l Locale) IsRTL() bool {
	return l.Direction == RTL
}

// Pick returns ar for an Arabic locale when it is set, otherwise en.
func (l Locale) Pick(en, ar string) string {
	if l.Language == Arabic && ar != "" {
		return ar
	}
	return en
}

// Tag returns the language tag of the locale.
func (l Locale) Tag() language.Tag {
	if l.Language == Arabic {
		return language.Arabic
	}
	return language.English
}

// Resolve determines the locale of a request from, in order: the lang query
// parameter, the lang cookie and the Accept-Language header.
func Resolve(r *http.Request) Locale {
	if l, ok := New(r.URL.Query().Get("lang")); ok {
		return l
	}

	if c, err := r.Cookie(CookieName); err == nil {
		if l, ok := New(c.Value); ok {
			return l
		}
	}

	if header := r.Header.Get("Accept-Language"); header != "" {
		return FromAcceptLanguage(header)
	}

	return Default
}

// FromAcceptLanguage picks the best supported locale for an Accept-Language
// header value.
func FromAcceptLanguage(header string) Locale {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	if index == 1 {
		return Locale{Language: Arabic, Direction: RTL}
	}
	return Default
}

type contextKey struct{}

// WithLocale returns a copy of ctx carrying l.
func WithLocale(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the locale stored in ctx, or Default.
func FromContext(ctx context.Context) Locale {
	if l, ok := ctx.Value(contextKey{}).(Locale); ok {
		return l
	}
	return Default
}
