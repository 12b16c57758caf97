package ctiscore

import (
	"regexp"
	"strings"
)

// tagPattern builds the first-match, dot-matches-newline capture for a
// single SGML tag. The capture is lazy, so it ends at the first closing
// tag and holds only the first <tag>...</tag> block.
func tagPattern(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)<` + tag + `>(.*?)</` + tag + `>`)
}

var (
	nestedTagPattern     = regexp.MustCompile(`<.*?>|</.*?>`)
	whitespaceRunPattern = regexp.MustCompile(`\s+`)
	docnoFieldPattern    = regexp.MustCompile(`<DOCNO>\s(.*)\s</DOCNO>`)
	docnoDatePattern     = regexp.MustCompile(`LA([0-9]{6})-[0-9]{4}`)
	headlineTagPattern   = tagPattern("HEADLINE")
	textTagPattern       = tagPattern("TEXT")
	graphicTagPattern    = tagPattern("GRAPHIC")
	sentencePattern      = regexp.MustCompile(`[^.!?]*[.!?]`)
)

// extractTag returns the cleaned contents of the first <tag>...</tag>
// block in raw: nested tags stripped, whitespace collapsed, underscores
// replaced with spaces. Returns "" if the tag is absent, per spec §4.B.
func extractTag(pattern *regexp.Regexp, raw string) string {
	m := pattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return cleanFieldText(m[1])
}

// cleanFieldText strips nested tags, collapses whitespace runs to single
// spaces, and replaces underscores with spaces — the field-extraction
// normalization spec §4.B requires for HEADLINE/TEXT/GRAPHIC.
func cleanFieldText(s string) string {
	s = nestedTagPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(whitespaceRunPattern.ReplaceAllString(s, " "))
	return strings.ReplaceAll(s, "_", " ")
}
