package blog

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
)

// SEO rule names.
const (
	RuleTitleLength      = "title_length"
	RuleMetaDescription  = "meta_description_length"
	RuleKeywordInTitle   = "keyword_in_title"
	RuleKeywordInIntro   = "keyword_in_first_paragraph"
	RuleKeywordInSlug    = "keyword_in_slug"
	RuleKeywordInHeading = "keyword_in_heading"
	RuleKeywordDensity   = "keyword_density"
	RuleWordCount        = "word_count"
	RuleSubheadings      = "subheadings"
	RuleImageAlt         = "image_alt_text"
	RuleInternalLink     = "internal_link"
	RuleExternalLink     = "external_link"
	RuleLanguage         = "language"
)

const (
	minTitleLength        = 30
	maxTitleLength        = 60
	minDescriptionLength  = 120
	maxDescriptionLength  = 160
	minWordCount          = 300
	minKeywordDensity     = 0.5
	maxKeywordDensity     = 2.5
	noFocusKeywordMessage = "no focus keyword set"
)

// Check is the outcome of one SEO rule.
type Check struct {
	Rule    string `json:"rule"`
	Passed  bool   `json:"passed"`
	Weight  int    `json:"weight"`
	Message string `json:"message"`
}

// Report is the SEO analysis of a post. Score is the sum of the weights of
// the passed checks, out of 100.
type Report struct {
	Score  int     `json:"score"`
	Checks []Check `json:"checks"`
}

// Input is what the analyzer looks at.
type Input struct {
	Title           string
	MetaDescription string
	FocusKeyword    string
	Slug            string
	Content         *Content
	// SiteHost is the host of the public site; links to it are internal.
	SiteHost string
}

// words splits s into lower-case words.
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// occurrences counts the non-overlapping occurrences of phrase in haystack.
func occurrences(haystack, phrase []string) int {
	if len(phrase) == 0 {
		return 0
	}
	n := 0
	for i := 0; i+len(phrase) <= len(haystack); {
		match := true
		for j := range phrase {
			if haystack[i+j] != phrase[j] {
				match = false

				break
			}
		}
		if match {
			n++
			i += len(phrase)
		} else {
			i++
		}
	}

	return n
}

func containsPhrase(text string, phrase []string) bool {
	return occurrences(words(text), phrase) > 0
}

func between(n, lo, hi int) bool { return n >= lo && n <= hi }

// isInternal reports whether a link points to the site itself.
func isInternal(link, siteHost string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	if u.Scheme == "" && u.Host == "" {
		return !strings.HasPrefix(link, "#") && link != ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	return siteHost != "" && host == strings.TrimPrefix(strings.ToLower(siteHost), "www.")
}

func isExternal(link, siteHost string) bool {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}

	return !isInternal(link, siteHost)
}

// Analyze runs the SEO rules on a post.
func Analyze(in Input) Report {
	content := in.Content
	if content == nil {
		content = &Content{}
	}
	keyword := words(in.FocusKeyword)
	body := words(content.Text)

	var checks []Check
	add := func(rule string, weight int, passed bool, msgFmt string, args ...any) {
		checks = append(checks, Check{Rule: rule, Passed: passed, Weight: weight, Message: fmt.Sprintf(msgFmt, args...)})
	}
	keywordRule := func(rule string, weight int, passed bool, msgFmt string, args ...any) {
		if len(keyword) == 0 {
			add(rule, weight, false, noFocusKeywordMessage)

			return
		}
		add(rule, weight, passed, msgFmt, args...)
	}

	titleLen := len([]rune(in.Title))
	add(RuleTitleLength, 10, between(titleLen, minTitleLength, maxTitleLength),
		"title is %d characters, aim for %d to %d", titleLen, minTitleLength, maxTitleLength)

	descLen := len([]rune(in.MetaDescription))
	add(RuleMetaDescription, 10, between(descLen, minDescriptionLength, maxDescriptionLength),
		"meta description is %d characters, aim for %d to %d", descLen, minDescriptionLength, maxDescriptionLength)

	keywordRule(RuleKeywordInTitle, 10, containsPhrase(in.Title, keyword),
		"focus keyword %s the title", foundIn(containsPhrase(in.Title, keyword)))
	keywordRule(RuleKeywordInIntro, 10, containsPhrase(content.FirstParagraph, keyword),
		"focus keyword %s the first paragraph", foundIn(containsPhrase(content.FirstParagraph, keyword)))

	// whole hyphen separated segments only, so "car" does not match "scar-tissue"
	inSlug := false
	if slugged := Slugify(in.FocusKeyword); len(keyword) > 0 && slugged != "" {
		inSlug = occurrences(strings.Split(in.Slug, "-"), strings.Split(slugged, "-")) > 0
	}
	keywordRule(RuleKeywordInSlug, 5, inSlug, "focus keyword %s the slug", foundIn(inSlug))

	inHeading := false
	subheadings := 0
	for _, h := range content.Headings {
		if h.Level > 1 && containsPhrase(h.Text, keyword) {
			inHeading = true
		}
		if h.Level == 2 {
			subheadings++
		}
	}
	keywordRule(RuleKeywordInHeading, 5, inHeading, "focus keyword %s a subheading", foundIn(inHeading))

	var density float64
	if len(body) > 0 {
		density = float64(occurrences(body, keyword)*len(keyword)) / float64(len(body)) * 100
	}
	keywordRule(RuleKeywordDensity, 10, density >= minKeywordDensity && density <= maxKeywordDensity,
		"keyword density is %.1f%%, aim for %.1f%% to %.1f%%", density, minKeywordDensity, maxKeywordDensity)

	add(RuleWordCount, 10, len(body) >= minWordCount,
		"content has %d words, aim for at least %d", len(body), minWordCount)
	add(RuleSubheadings, 5, subheadings > 0, "content has %d H2 subheadings", subheadings)

	missingAlt := 0
	for _, img := range content.Images {
		if strings.TrimSpace(img.Alt) == "" {
			missingAlt++
		}
	}
	add(RuleImageAlt, 5, missingAlt == 0, "%d of %d images lack alt text", missingAlt, len(content.Images))

	internal, external := 0, 0
	for _, link := range content.Links {
		switch {
		case isInternal(link, in.SiteHost):
			internal++
		case isExternal(link, in.SiteHost):
			external++
		}
	}
	add(RuleInternalLink, 5, internal > 0, "content has %d internal links", internal)
	add(RuleExternalLink, 5, external > 0, "content has %d external links", external)

	lang := whatlanggo.Detect(content.Text)
	english := len(body) > 0 && lang.Lang == whatlanggo.Eng
	add(RuleLanguage, 10, english, "content language detected as %s", languageName(lang, len(body) > 0))

	r := Report{Checks: checks}
	for _, c := range checks {
		if c.Passed {
			r.Score += c.Weight
		}
	}

	return r
}

func foundIn(found bool) string {
	if found {
		return "appears in"
	}

	return "is missing from"
}

func languageName(info whatlanggo.Info, hasText bool) string {
	if !hasText {
		return "unknown"
	}

	return info.Lang.String()
}
