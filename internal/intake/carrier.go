package intake

import (
	"regexp"
	"strings"

	"qcscargo/pkg/domain"
)

type carrierRule struct {
	carrier domain.Carrier
	pattern *regexp.Regexp
}

// Amazon and UPS go first; their prefixes make them unambiguous, while the
// digit-only formats of the other carriers overlap.
var carrierRules = []carrierRule{ //nolint: gochecknoglobals
	{domain.CarrierAmazon, regexp.MustCompile(`^TBA\d{12}$`)},
	{domain.CarrierUPS, regexp.MustCompile(`^1Z[0-9A-Z]{16}$`)},
	{domain.CarrierDHL, regexp.MustCompile(`^JD\d{18}$`)},
	{domain.CarrierUSPS, regexp.MustCompile(`^(9\d{19,21}|[A-Z]{2}\d{9}US)$`)},
	{domain.CarrierFedEx, regexp.MustCompile(`^(\d{12}|\d{15}|\d{20})$`)},
	{domain.CarrierDHL, regexp.MustCompile(`^\d{10}$`)},
}

// NormalizeTracking upper-cases a tracking number and strips the spaces and
// dashes carriers print for readability.
func NormalizeTracking(trackingNumber string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '\t':
			return -1
		default:
			return r
		}
	}, strings.ToUpper(strings.TrimSpace(trackingNumber)))
}

// DetectCarrier guesses the carrier of a tracking number from its format.
func DetectCarrier(trackingNumber string) domain.Carrier {
	n := NormalizeTracking(trackingNumber)
	for _, rule := range carrierRules {
		if rule.pattern.MatchString(n) {
			return rule.carrier
		}
	}

	return domain.CarrierOther
}
