package blog_test

import (
	"strings"
	"testing"

	"qcscargo/internal/blog"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Air Freight to Jamaica: A Complete Shipping Guide": "air-freight-to-jamaica-a-complete-shipping-guide",
		"Envíos a Panamá: ¡Rápido!":                         "envios-a-panama-rapido",
		"Customer's Guide":                                  "customers-guide",
		"  2025   Rates  ":                                  "2025-rates",
		"  --  ":                                            "",
	}
	for in, want := range tests {
		require.Equal(t, want, blog.Slugify(in), in)
	}

	long := blog.Slugify(strings.Repeat("word ", 30))
	require.LessOrEqual(t, len(long), 80)
	require.False(t, strings.HasSuffix(long, "-"))
	require.True(t, strings.HasPrefix(long, "word-word"))
}
