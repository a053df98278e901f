package internal

import (
	"regexp"
	"strings"
)

type annotation string

const (
	Specification annotation = "@Specification"
)

func (a annotation) String() string {
	return string(a)
}

func (a annotation) EqualsIgnoreCase(str string) bool {
	return strings.ToUpper(str) == strings.ToUpper(a.String())
}

func (a annotation) PrefixOf(str string) bool {
	return strings.HasPrefix(strings.ToUpper(str), strings.ToUpper(a.String()))
}

// ParseAnnotation looks for a line starting with @Specification or
// @Specification(Entity). It reports the entity name, empty when omitted, and
// whether the annotation was found. Lines may keep their "//" prefix.
func ParseAnnotation(comments []string) (string, bool) {
	for _, comment := range comments {
		text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "//"))
		seg := strings.Fields(text)
		// the annotation must be the first word of the line
		if len(seg) == 0 || !Specification.PrefixOf(seg[0]) {
			continue
		}
		if Specification.EqualsIgnoreCase(seg[0]) {
			return "", true
		}
		if v, ok := ExtractValue(seg[0], Specification.String()); ok {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// ExtractValue returns the text between the parentheses of annotation(...),
// ignoring case of the annotation.
func ExtractValue(s string, annotation string) (string, bool) {
	reg := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(annotation) + `\((.*)\)$`)
	if !reg.MatchString(s) {
		return "", false
	}
	matchArr := reg.FindStringSubmatch(s)
	return matchArr[len(matchArr)-1], true
}
