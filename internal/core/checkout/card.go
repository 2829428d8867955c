package checkout

import "strings"

// FormatCardNumber applies the display mask: digits grouped in fours,
// separated by spaces. Non-digits are stripped first. This is cosmetic only;
// no checksum is verified anywhere.
func FormatCardNumber(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	var out strings.Builder
	for i, r := range s {
		if i > 0 && i%4 == 0 {
			out.WriteByte(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}
