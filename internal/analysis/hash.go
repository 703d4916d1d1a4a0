package analysis

import "unicode/utf16"

// HashText - детерминированный 32-битный хеш строки.
// Проходит по UTF-16 кодовым единицам: hash = hash*31 + unit с переполнением int32 на каждом шаге.
func HashText(s string) int32 {
	var hash int32
	for _, unit := range utf16.Encode([]rune(s)) {
		hash = (hash << 5) - hash + int32(unit)
	}
	return hash
}

// PromptSeed возвращает модуль HashText в 64 битах, поэтому MinInt32 даёт 2^31.
func PromptSeed(s string) int64 {
	h := int64(HashText(s))
	if h < 0 {
		return -h
	}
	return h
}
