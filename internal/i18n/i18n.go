package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// LocaleEnUS 默认语言
	LocaleEnUS = "en-US"
	// LocaleZhCN 简体中文
	LocaleZhCN = "zh-CN"
)

const localeQueryKey = "locale"
const localeHeaderKey = "Accept-Language"

var supportedLocales = map[string]struct{}{
	LocaleEnUS: {},
	LocaleZhCN: {},
}

// ResolveLocale 解析请求语言（query 优先于 Accept-Language）
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return LocaleEnUS
	}
	if locale := NormalizeLocale(c.Query(localeQueryKey)); locale != "" {
		return locale
	}
	header := c.GetHeader(localeHeaderKey)
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if locale := NormalizeLocale(tag); locale != "" {
			return locale
		}
	}
	return LocaleEnUS
}

// NormalizeLocale 归一化语言标签，不支持的语言返回空串
func NormalizeLocale(raw string) string {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return ""
	}
	if _, ok := supportedLocales[tag]; ok {
		return tag
	}
	lower := strings.ToLower(tag)
	switch {
	case strings.HasPrefix(lower, "zh"):
		return LocaleZhCN
	case strings.HasPrefix(lower, "en"):
		return LocaleEnUS
	}
	return ""
}

// T 翻译消息 key，未命中时回退英文，再回退 key 本身
func T(locale, key string) string {
	if messages, ok := catalogs[locale]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogs[LocaleEnUS][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化消息
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
