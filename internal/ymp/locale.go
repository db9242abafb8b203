package ymp

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Resolve returns the variant of t best suited to the requested locale.
// The request may be a BCP 47 tag ("en-GB") or a POSIX locale ("de_DE.UTF-8").
// An exact locale key wins, then a key sharing the base language (a bare
// language key before regional ones), then Default.
func (t LocalizedText) Resolve(tag string) string {
	want := normalizeLocale(tag)
	if want == "" || len(t.Locales) == 0 {
		return t.Default
	}

	keys := t.Tags()
	for _, k := range keys {
		if strings.EqualFold(normalizeLocale(k), want) {
			return t.Locales[k]
		}
	}

	wantTag, err := language.Parse(want)
	if err != nil {
		return t.Default
	}
	wantBase, _ := wantTag.Base()

	match := ""
	for _, k := range keys {
		norm := normalizeLocale(k)
		kt, err := language.Parse(norm)
		if err != nil {
			continue
		}
		if base, _ := kt.Base(); base != wantBase {
			continue
		}
		if !strings.Contains(norm, "-") {
			return t.Locales[k]
		}
		if match == "" {
			match = k
		}
	}
	if match != "" {
		return t.Locales[match]
	}
	return t.Default
}

// Tags returns the locale keys of t in sorted order.
func (t LocalizedText) Tags() []string {
	keys := make([]string, 0, len(t.Locales))
	for k := range t.Locales {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// normalizeLocale turns "de_DE.UTF-8@euro" into "de-DE".
func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}
