// Package i18n localizes user-facing API messages. The language is chosen
// from the request's Accept-Language header; Simplified Chinese is the
// default.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a user-facing message.
type Key string

const (
	QueryRequired      Key = "query_required"
	QueryTooLong       Key = "query_too_long"
	LangUnsupported    Key = "lang_unsupported"
	LimitInvalid       Key = "limit_invalid"
	EmailRequired      Key = "email_required"
	EmailInvalid       Key = "email_invalid"
	EmailTaken         Key = "email_taken"
	PasswordRequired   Key = "password_required"
	PasswordTooShort   Key = "password_too_short"
	PasswordTooLong    Key = "password_too_long"
	InvalidCredentials Key = "invalid_credentials"
	InvalidBody        Key = "invalid_body"
	InvalidInput       Key = "invalid_input"
	Unauthorized       Key = "unauthorized"
	NotFound           Key = "not_found"
	RateLimited        Key = "rate_limited"
	TranslationFailed  Key = "translation_failed"
	TranslationTimeout Key = "translation_timeout"
	RegisterFailed     Key = "register_failed"
	Internal           Key = "internal"
)

// supported lists the available languages; the first one is the default.
var supported = []language.Tag{
	language.SimplifiedChinese,
	language.English,
}

var messages = map[Key][2]string{
	QueryRequired:      {"请输入要查询的内容", "Please enter a word or phrase to look up."},
	QueryTooLong:       {"查询内容过长", "The query is too long."},
	LangUnsupported:    {"不支持的语言类型", "Unsupported language."},
	LimitInvalid:       {"limit 参数无效", "Invalid limit."},
	EmailRequired:      {"请输入邮箱", "Please enter an email address."},
	EmailInvalid:       {"邮箱格式不正确", "Invalid email address."},
	EmailTaken:         {"该邮箱已被注册", "This email is already registered."},
	PasswordRequired:   {"请输入密码", "Please enter a password."},
	PasswordTooShort:   {"密码至少需要6个字符", "The password must be at least 6 characters."},
	PasswordTooLong:    {"密码过长", "The password is too long."},
	InvalidCredentials: {"邮箱或密码错误", "Invalid email or password."},
	InvalidBody:        {"请求体格式错误", "Malformed request body."},
	InvalidInput:       {"请求参数无效", "Invalid request."},
	Unauthorized:       {"请先登录", "Please sign in first."},
	NotFound:           {"资源不存在", "Not found."},
	RateLimited:        {"请求过于频繁，请稍后再试", "Too many requests, please try again later."},
	TranslationFailed:  {"翻译服务异常 (已重试%d次)", "Translation service error (retried %d times)."},
	TranslationTimeout: {"翻译服务请求超时", "The translation service timed out."},
	RegisterFailed:     {"注册失败，请稍后重试", "Registration failed, please try again later."},
	Internal:           {"服务异常", "Internal server error."},
}

var (
	matcher = language.NewMatcher(supported)
	cat     = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(supported[0]))
	for key, texts := range messages {
		for i, tag := range supported {
			if err := b.SetString(tag, string(key), texts[i]); err != nil {
				panic("i18n: " + err.Error())
			}
		}
	}
	return b
}

// Match returns the supported language that best fits an Accept-Language
// header value. Malformed or empty headers yield the default.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return supported[0]
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return supported[0]
	}
	return supported[idx]
}

// Printer formats messages in one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a Printer for tag.
func NewPrinter(tag language.Tag) *Printer {
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

// FromRequest returns a Printer for the language preferred by r.
func FromRequest(r *http.Request) *Printer {
	return NewPrinter(Match(r.Header.Get("Accept-Language")))
}

// Language returns the printer's language.
func (p *Printer) Language() language.Tag { return p.tag }

// Text returns the localized message for key, formatted with args.
func (p *Printer) Text(key Key, args ...any) string {
	return p.p.Sprintf(string(key), args...)
}
