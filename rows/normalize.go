package rows

import "strings"

// currencyReplacer strips the recognized currency symbols and thousands
// separators.
var currencyReplacer = strings.NewReplacer("$", "", "€", "", ",", "")

// Normalize converts a matched numeric token into a plain decimal string.
// Currency symbols and thousands separators are removed and accounting
// parentheses become a leading minus sign:
//
//	Normalize("$1,234.56") // "1234.56"
//	Normalize("(500)")     // "-500"
//
// The result is not parsed; callers that need a number own that step.
func Normalize(token string) string {
	s := currencyReplacer.Replace(strings.TrimSpace(token))
	negative := strings.HasPrefix(s, "(")
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	if negative {
		return "-" + s
	}
	return s
}
