package utils

import (
	"strings"
	"unicode"
)

// Trim 去首尾空白
func Trim(s string) string { return strings.TrimSpace(s) }

// SanitizeTel 只保留数字和 '+'（展示用号码）
func SanitizeTel(phone string) string {
	return strings.Map(func(r rune) rune {
		if r == '+' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, phone)
}

// SanitizeDigits 只保留 ASCII 数字
func SanitizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// Initials 取前两个单词的首字母（大写），没有则返回 "NA"
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, part := range strings.Split(name, " ") {
		if part == "" {
			continue
		}
		r := []rune(part)[0]
		b.WriteRune(unicode.ToUpper(r))
		if n++; n == 2 {
			break
		}
	}
	if b.Len() == 0 {
		return "NA"
	}
	return b.String()
}
