// Package i18n provides internationalization support for the order service.
// It handles translation of user-facing workflow and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (Japanese, matching the form).
	DefaultLocale = "ja"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale or key is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "ja,en-US;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
// The ja strings mirror the paper form's original wording.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"ja": {
			// Error messages
			"error.invalid_request":       "不正なリクエストです",
			"error.invalid_request_body":  "リクエスト本文が不正です",
			"error.internal_error":        "予期しないエラーが発生しました",
			"error.not_found":             "見つかりません",
			"error.form_not_found":        "注文フォームが見つかりません。",
			"error.rate_limit_exceeded":   "リクエストが多すぎます。しばらくしてからお試しください",
			"error.conflict":              "競合が発生しました",
			"error.timeout":               "リクエストがタイムアウトしました",
			"error.line_not_found":        "指定された商品が見つかりません。",
			"error.unknown_option":        "指定された商品オプションが見つかりません。",
			"error.validation.guardian":   "保護者氏名と保育園児童名を入力してください。",
			"error.validation.empty":      "商品が選択されていません。",
			"error.submit_in_progress":    "送信処理中です。しばらくお待ちください。",
			"error.network":               "注文データの送信に失敗しました。ネットワーク接続を確認してください。",
			"error.sheet_unconfigured":    "設定エラー: 送信先URLがありません。",
			"error.sheet_write":           "サーバーへの記録中にエラーが発生しました: %s",
			"error.confirmation_failed":   "エラーが発生しました。もう一度お試しください。",

			// Success messages
			"success.confirmation_fallback": "%s 様\n\n%s様の学用品のご注文、誠にありがとうございます。\n\n合計金額は %d円 となります。\n\nご注文内容を確認いたしました。",
		},
		"en": {
			// Error messages
			"error.invalid_request":       "Invalid request",
			"error.invalid_request_body":  "Invalid request body",
			"error.internal_error":        "An unexpected error occurred",
			"error.not_found":             "Not found",
			"error.form_not_found":        "Order form not found.",
			"error.rate_limit_exceeded":   "Too many requests, please try again later",
			"error.conflict":              "Conflict",
			"error.timeout":               "Request timed out",
			"error.line_not_found":        "The requested product could not be found.",
			"error.unknown_option":        "The requested product option could not be found.",
			"error.validation.guardian":   "Please enter both the guardian name and the child name.",
			"error.validation.empty":      "No products have been selected.",
			"error.submit_in_progress":    "A submission is already in progress, please wait.",
			"error.network":               "Failed to send the order data. Please check your network connection.",
			"error.sheet_unconfigured":    "Configuration error: no destination URL is set.",
			"error.sheet_write":           "An error occurred while recording the order: %s",
			"error.confirmation_failed":   "An error occurred. Please try again.",

			// Success messages
			"success.confirmation_fallback": "Dear %s,\n\nThank you for ordering school supplies for %s.\n\nThe total comes to %d yen.\n\nWe have confirmed your order.",
		},
	}
}
