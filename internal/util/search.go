package util

import (
	"regexp"
	"strings"
)

// SearchQuery represents the parsed components of a saved-report filter.
type SearchQuery struct {
	Project []string
	Package []string
	Status  []string
	Text    []string
}

var (
	projectRegex = regexp.MustCompile(`project:(\w+)`)
	packageRegex = regexp.MustCompile(`package:(\w+)`)
	statusRegex  = regexp.MustCompile(`status:(\w+)`)
)

// ParseSearchQuery breaks down a raw query string into its structured components.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			if len(match) > 1 {
				values = append(values, strings.ToLower(match[1]))
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	sq.Project = extract(projectRegex)
	sq.Package = extract(packageRegex)
	sq.Status = extract(statusRegex)
	for _, w := range strings.Fields(query) {
		sq.Text = append(sq.Text, strings.ToLower(w))
	}

	return sq
}

// Empty reports whether the query has no terms at all.
func (q SearchQuery) Empty() bool {
	return len(q.Project) == 0 && len(q.Package) == 0 && len(q.Status) == 0 && len(q.Text) == 0
}
