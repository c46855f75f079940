package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// 站点语言常量
const (
	LocaleZH = "zh-CN"
	LocaleTW = "zh-TW"
	LocaleEN = "en-US"
)

// T 按语言取文案，缺失时回退简体中文，最后回退 key 本身。
func T(locale, key string) string {
	normalized := Normalize(locale)
	if messages, ok := catalog[normalized]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if normalized != LocaleZH {
		if msg, ok := catalog[LocaleZH][key]; ok {
			return msg
		}
	}
	return key
}

// Sprintf 按语言取文案并格式化参数。
func Sprintf(locale, key string, args ...interface{}) string {
	template := T(locale, key)
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}

// Normalize 归一化语言标识。
func Normalize(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case strings.HasPrefix(l, "zh-tw"), strings.HasPrefix(l, "zh-hk"), strings.HasPrefix(l, "zh-mo"):
		return LocaleTW
	case strings.HasPrefix(l, "en"):
		return LocaleEN
	default:
		return LocaleZH
	}
}

// ResolveLocale 从请求中解析语言偏好。
// 优先级：query locale > X-Locale 头 > Accept-Language 头。
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return LocaleZH
	}
	if locale := strings.TrimSpace(c.Query("locale")); locale != "" {
		return Normalize(locale)
	}
	if locale := strings.TrimSpace(c.GetHeader("X-Locale")); locale != "" {
		return Normalize(locale)
	}
	accept := strings.TrimSpace(c.GetHeader("Accept-Language"))
	if accept != "" {
		first := strings.SplitN(accept, ",", 2)[0]
		return Normalize(first)
	}
	return LocaleZH
}
