package placeholder

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Kind distinguishes "子主题" (sub-topics) from "子项" (sub-items).
type Kind string

const (
	KindTopic Kind = "主题"
	KindItem  Kind = "项"
)

// examplesMarker introduces the example list inside a placeholder title.
const examplesMarker = "例如"

// pattern matches the leading count and kind. Any Unicode decimal digit
// counts, full-width ones included, and the gap before "个" may hold any
// Unicode space such as U+00A0 or U+3000 from pasted text.
var pattern = regexp.MustCompile(`^[\s\v\p{Z}\x{85}]*(\p{Nd}+)[\s\v\p{Z}\x{85}]*个子(主题|项)`)

var (
	semicolonRun = regexp.MustCompile(`[;；]+`)
	commaRun     = regexp.MustCompile(`[，、]+`)
)

// Characters stripped after "例如" and around every example.
const (
	leadCutset    = "：:，, \t-—"
	exampleCutset = "。．.，,；;：: "
)

// Descriptor is the parsed form of a placeholder title.
type Descriptor struct {
	// Count is the declared number of sub-items. It is informational and
	// not checked against the number of examples or replacements.
	Count int
	// Kind is the kind token following "个子".
	Kind Kind
	// Examples are the example titles listed after "例如", in order.
	Examples []string
	// Raw is the trimmed original title.
	Raw string
}

// IsPlaceholder reports whether title is a placeholder row.
func IsPlaceholder(title string) bool {
	return pattern.MatchString(strings.TrimSpace(title))
}

// Parse extracts the count, kind, and examples from a placeholder title.
// It returns false when the title is not a placeholder.
func Parse(title string) (*Descriptor, bool) {
	t := strings.TrimSpace(title)

	m := pattern.FindStringSubmatchIndex(t)
	if m == nil {
		return nil, false
	}

	d := &Descriptor{
		Count:    parseCount(t[m[2]:m[3]]),
		Kind:     Kind(t[m[4]:m[5]]),
		Examples: []string{},
		Raw:      t,
	}

	rest := strings.TrimSpace(t[m[1]:])
	if _, after, ok := strings.Cut(rest, examplesMarker); ok {
		d.Examples = SplitExamples(strings.TrimLeft(after, leadCutset))
	}

	return d, true
}

// SplitExamples splits an example list into trimmed, non-empty entries.
// Semicolons separate entries; when the text holds at most one
// semicolon-separated entry, full-width commas and enumeration commas are
// used instead.
func SplitExamples(text string) []string {
	s := strings.TrimSpace(text)
	if s == "" {
		return []string{}
	}

	parts := splitNonEmpty(semicolonRun, s)
	if len(parts) <= 1 {
		parts = splitNonEmpty(commaRun, s)
	}

	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), exampleCutset)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

func splitNonEmpty(sep *regexp.Regexp, s string) []string {
	var out []string

	for _, p := range sep.Split(s, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// parseCount converts the matched digits, folding full-width forms first.
// Counts that overflow int saturate; the value is informational only.
func parseCount(digits string) int {
	n, err := strconv.Atoi(asciiDigits(width.Narrow.String(digits)))
	if err != nil {
		return math.MaxInt
	}

	return n
}

// asciiDigits maps every decimal digit to its ASCII form. Unicode lays out
// each decimal digit set as a run of ten starting at zero, so the value is
// the rune's offset from the start of its run.
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII || !unicode.IsDigit(r) {
			return r
		}

		start := r
		for unicode.IsDigit(start - 1) {
			start--
		}

		return '0' + (r-start)%10
	}, s)
}
