package blog_test

import (
	"strings"
	"testing"

	"qcscargo/internal/blog"

	"github.com/stretchr/testify/require"
)

const (
	guideTitle       = "Air Freight to Jamaica: A Complete Shipping Guide"
	guideDescription = "Learn how air freight from Miami to Jamaica works, what it costs per kilogram, " +
		"how long it takes and how to prepare your parcels."
	filler = "Our team in Miami handles every parcel with great care. "
)

// guideMarkdown is a well optimised post of a little over 300 words using
// the focus keyword "air freight" three times.
func guideMarkdown() string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: \"" + guideTitle + "\"\n")
	b.WriteString("description: \"" + guideDescription + "\"\n")
	b.WriteString("keyword: air freight\n")
	b.WriteString("tags: [Jamaica, Air, jamaica]\n")
	b.WriteString("---\n\n")
	b.WriteString("Air freight is the fastest way to move parcels from Miami to the Caribbean.\n\n")
	b.WriteString("## Why choose air freight\n\n")
	b.WriteString("Shipping by plane to Jamaica is fast. " + strings.Repeat(filler, 9) + "\n\n")
	b.WriteString(strings.Repeat(filler, 10) + "\n\n")
	b.WriteString(strings.Repeat(filler, 10) + "\n\n")
	b.WriteString("[Read our rates](/rates) and [IATA guidance](https://www.iata.org/).\n\n")
	b.WriteString("![Cargo plane at MIA](https://cdn.qcs-cargo.com/plane.jpg)\n")

	return b.String()
}

func TestRender(t *testing.T) {
	c, err := blog.NewRenderer().Render([]byte(guideMarkdown()))
	require.NoError(t, err)

	require.Equal(t, guideTitle, c.Meta["title"])
	require.Equal(t, "air freight", c.Meta["keyword"])
	require.Equal(t, "Air freight is the fastest way to move parcels from Miami to the Caribbean.", c.FirstParagraph)
	require.Equal(t, []blog.Heading{{Level: 2, Text: "Why choose air freight"}}, c.Headings)
	require.Equal(t, []string{"/rates", "https://www.iata.org/"}, c.Links)
	require.Equal(t, []blog.Image{{Src: "https://cdn.qcs-cargo.com/plane.jpg", Alt: "Cargo plane at MIA"}}, c.Images)
	require.Contains(t, c.HTML, "<h2")
	require.NotContains(t, c.Text, "description:")
}

func TestRender_Sanitises(t *testing.T) {
	md := "# Title\n\n<script>alert(1)</script>\n\n[click](javascript:alert(1))\n\n" +
		"| kg | price |\n|----|-------|\n| 1 | $5 |\n"

	c, err := blog.NewRenderer().Render([]byte(md))
	require.NoError(t, err)
	require.NotContains(t, c.HTML, "<script")
	require.NotContains(t, c.HTML, "javascript:")
	require.Contains(t, c.HTML, "<table>")
	require.Nil(t, c.Meta)
}

func TestRender_InvalidFrontMatter(t *testing.T) {
	_, err := blog.NewRenderer().Render([]byte("---\ntitle: [unclosed\n---\n\nbody\n"))
	require.Error(t, err)
}

func TestAnalyze_OptimisedPost(t *testing.T) {
	c, err := blog.NewRenderer().Render([]byte(guideMarkdown()))
	require.NoError(t, err)

	r := blog.Analyze(blog.Input{
		Title:           guideTitle,
		MetaDescription: guideDescription,
		FocusKeyword:    "air freight",
		Slug:            blog.Slugify(guideTitle),
		Content:         c,
		SiteHost:        "www.qcs-cargo.com",
	})
	for _, check := range r.Checks {
		require.True(t, check.Passed, "%s: %s", check.Rule, check.Message)
	}
	require.Len(t, r.Checks, 13)
	require.Equal(t, 100, r.Score)
}

func TestAnalyze_WeakPost(t *testing.T) {
	c, err := blog.NewRenderer().Render([]byte("Short note.\n\n![](https://example.com/a.png)\n"))
	require.NoError(t, err)

	r := blog.Analyze(blog.Input{Title: "Note", Slug: "note", Content: c})

	failed := map[string]string{}
	for _, check := range r.Checks {
		if !check.Passed {
			failed[check.Rule] = check.Message
		}
	}
	require.Equal(t, "no focus keyword set", failed[blog.RuleKeywordInTitle])
	require.Contains(t, failed, blog.RuleTitleLength)
	require.Contains(t, failed, blog.RuleMetaDescription)
	require.Contains(t, failed, blog.RuleWordCount)
	require.Contains(t, failed, blog.RuleSubheadings)
	require.Equal(t, "1 of 1 images lack alt text", failed[blog.RuleImageAlt])
	require.Contains(t, failed, blog.RuleInternalLink)
	require.Less(t, r.Score, 30)
}

func TestAnalyze_KeywordDensityTooHigh(t *testing.T) {
	c, err := blog.NewRenderer().Render([]byte(strings.Repeat("Air freight air freight cargo. ", 20)))
	require.NoError(t, err)

	r := blog.Analyze(blog.Input{FocusKeyword: "Air Freight", Content: c})
	for _, check := range r.Checks {
		if check.Rule == blog.RuleKeywordDensity {
			require.False(t, check.Passed)
			require.Contains(t, check.Message, "80.0%")
		}
	}
}

func TestAnalyze_KeywordInSlugMatchesWholeSegments(t *testing.T) {
	c, err := blog.NewRenderer().Render([]byte("Body text.\n"))
	require.NoError(t, err)

	tests := []struct {
		slug    string
		keyword string
		want    bool
	}{
		{slug: "car-shipping-rates", keyword: "car", want: true},
		{slug: "cheap-car-shipping", keyword: "car shipping", want: true},
		{slug: "scar-tissue-care", keyword: "car", want: false},
		{slug: "cargo-to-jamaica", keyword: "car", want: false},
		{slug: "car-to-shipping", keyword: "car shipping", want: false},
		{slug: "air-freight-guide", keyword: "Air Freight", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.slug+"/"+tt.keyword, func(t *testing.T) {
			r := blog.Analyze(blog.Input{Title: "Title", Slug: tt.slug, FocusKeyword: tt.keyword, Content: c})

			found := false
			for _, check := range r.Checks {
				if check.Rule == blog.RuleKeywordInSlug {
					found = true
					require.Equal(t, tt.want, check.Passed, check.Message)
				}
			}
			require.True(t, found)
		})
	}
}
