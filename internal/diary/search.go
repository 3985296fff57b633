package diary

import (
	"strings"

	"github.com/akyairhashvil/sitediary/internal/models"
	"github.com/akyairhashvil/sitediary/internal/util"
)

func squash(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

func anyContains(values []string, s string) bool {
	for _, v := range values {
		if strings.Contains(s, v) {
			return true
		}
	}
	return false
}

// Matches reports whether a saved report satisfies every term of q. Terms of
// the same kind are alternatives; free text must all appear somewhere in the
// report.
func Matches(r models.Report, q util.SearchQuery) bool {
	if len(q.Project) > 0 && !anyContains(q.Project, squash(r.Project.ProjectNo)) {
		return false
	}
	if len(q.Package) > 0 && !anyContains(q.Package, squash(r.Project.GIPackage)) {
		return false
	}
	rows := r.Rows()
	if len(q.Status) > 0 {
		found := false
		for _, e := range rows {
			status := squash(string(e.Status))
			for _, want := range q.Status {
				if strings.HasPrefix(status, want) {
					found = true
				}
			}
		}
		if !found {
			return false
		}
	}
	if len(q.Text) == 0 {
		return true
	}

	var b strings.Builder
	for _, f := range r.Project.Fields() {
		b.WriteString(f[1] + "\n")
	}
	for _, e := range rows {
		b.WriteString(strings.Join(e.Values(), "\n") + "\n")
	}
	b.WriteString(r.Notes + "\n")
	for _, sig := range r.SignOff {
		b.WriteString(sig.Name + "\n")
	}
	haystack := strings.ToLower(b.String())
	for _, word := range q.Text {
		if !strings.Contains(haystack, word) {
			return false
		}
	}
	return true
}
