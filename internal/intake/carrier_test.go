package intake_test

import (
	"testing"

	"qcscargo/internal/intake"
	"qcscargo/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestDetectCarrier(t *testing.T) {
	tests := []struct {
		tracking string
		want     domain.Carrier
	}{
		{"1Z999AA10123456784", domain.CarrierUPS},
		{"1z 999 aa1 0123 456 784", domain.CarrierUPS},
		{"TBA123456789012", domain.CarrierAmazon},
		{"tba-123456789012", domain.CarrierAmazon},
		{"123456789012", domain.CarrierFedEx},
		{"123456789012345", domain.CarrierFedEx},
		{"12345678901234567890", domain.CarrierFedEx},
		{"9400111899223197428490", domain.CarrierUSPS},
		{"92055901755477000271990", domain.CarrierOther},
		{"94001118992231974284", domain.CarrierUSPS},
		{"EA123456789US", domain.CarrierUSPS},
		{"1234567890", domain.CarrierDHL},
		{"JD014600006281234567", domain.CarrierDHL},
		{"LP00123456", domain.CarrierOther},
		{"", domain.CarrierOther},
	}
	for _, tt := range tests {
		t.Run(tt.tracking, func(t *testing.T) {
			require.Equal(t, tt.want, intake.DetectCarrier(tt.tracking))
		})
	}
}

func TestNormalizeTracking(t *testing.T) {
	require.Equal(t, "1Z999AA10123456784", intake.NormalizeTracking(" 1z-999 aa1-0123456784 "))
}
