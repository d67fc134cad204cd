package catalog

import (
	"sort"
	"strings"

	"github.com/arthur-debert/xctemplates/pkg/template"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Search returns the templates matching query, in catalog order
func (c *Catalog) Search(query string) []*template.Template {
	templates := c.Templates()

	matches := []*template.Template{}
	for _, t := range templates {
		if Match(t, query) {
			matches = append(matches, t)
		}
	}

	c.logger.Debug().
		Str("query", query).
		Int("matches", len(matches)).
		Int("templates", len(templates)).
		Msg("Search completed")
	return matches
}

// Find returns the template whose identifier (host/user/repository/name)
// equals id
func (c *Catalog) Find(id string) (*template.Template, bool) {
	for _, t := range c.Templates() {
		if t.Identifier() == id {
			return t, true
		}
	}
	return nil, false
}

// Match reports whether t matches query. Name, bundle name, repository
// and remote URLs must equal the query; the full identifier only needs to
// start with it.
func Match(t *template.Template, query string) bool {
	switch {
	case t.Name == query,
		t.NameWithExtension == query,
		t.Repository == query:
		return true
	case t.RemoteRepoURL != nil && t.RemoteRepoURL.String() == query:
		return true
	case t.RemoteFileURL != nil && t.RemoteFileURL.String() == query:
		return true
	}
	return strings.HasPrefix(t.FormattedString(true, false), query)
}

// maxTypoDistance bounds the edit distance of a name suggestion
const maxTypoDistance = 2

// Suggest returns up to limit template identifiers that look like what
// query was meant to find: fuzzy subsequence matches first (closest
// first), then names within a small edit distance.
func Suggest(templates []*template.Template, query string, limit int) []string {
	if query == "" || limit <= 0 {
		return nil
	}

	identifiers := make([]string, len(templates))
	for i, t := range templates {
		identifiers[i] = t.Identifier()
	}

	ranks := fuzzy.RankFindFold(query, identifiers)
	sort.Stable(ranks)

	seen := map[string]bool{}
	var suggestions []string
	add := func(s string) {
		if !seen[s] && len(suggestions) < limit {
			seen[s] = true
			suggestions = append(suggestions, s)
		}
	}

	for _, rank := range ranks {
		add(rank.Target)
	}

	lowered := strings.ToLower(query)
	for _, t := range templates {
		if fuzzy.LevenshteinDistance(lowered, strings.ToLower(t.Name)) <= maxTypoDistance {
			add(t.Identifier())
		}
	}

	return suggestions
}
