package notify

import (
	"strings"

	"qcscargo/pkg/serrors"
)

// NormalizePhone converts a phone number to E.164. Numbers without an
// international prefix get defaultCountryCode; US style ten digit numbers
// are the common case. Separators such as spaces, dashes, dots and
// parentheses are ignored.
func NormalizePhone(raw, defaultCountryCode string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "whatsapp:")
	international := false
	switch {
	case strings.HasPrefix(s, "+"):
		international = true
		s = s[1:]
	case strings.HasPrefix(s, "00"):
		international = true
		s = s[2:]
	}

	var digits strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return "", serrors.With(serrors.ErrBadRequest, "invalid phone number %q", raw)
		}
	}
	d := digits.String()

	if !international {
		cc := strings.TrimPrefix(defaultCountryCode, "+")
		switch {
		case len(d) == 10:
			d = cc + d
		case len(d) == 10+len(cc) && strings.HasPrefix(d, cc):
		default:
			return "", serrors.With(serrors.ErrBadRequest, "invalid phone number %q", raw)
		}
	}

	// E.164 allows at most 15 digits; the shortest valid numbers have 8
	if len(d) < 8 || len(d) > 15 || d[0] == '0' {
		return "", serrors.With(serrors.ErrBadRequest, "invalid phone number %q", raw)
	}

	return "+" + d, nil
}
