package testutils

import "strings"

// MultibyteString возвращает строку из runes символов по 4 байта. Нужна для проверки лимитов,
// которые считают байты, а не руны.
func MultibyteString(runes int) string {
	return strings.Repeat("😁", runes)
}
