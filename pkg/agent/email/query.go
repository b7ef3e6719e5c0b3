package email

import (
	"regexp"
	"strings"
)

// maxListResults caps an inbox listing.
const maxListResults = 100

var emailAddressRegex = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

var fromRegex = regexp.MustCompile(`(?i)\bfrom\s+([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}|[A-Za-z]+)`)

// stopWords are dropped before OR-joining the remaining terms.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "my": true, "me": true, "i": true,
	"show": true, "list": true, "find": true, "check": true, "get": true,
	"email": true, "emails": true, "mail": true, "mails": true, "messages": true,
	"inbox": true, "any": true, "all": true, "recent": true, "latest": true,
	"do": true, "have": true, "are": true, "there": true, "in": true,
	"of": true, "for": true, "about": true, "please": true, "can": true, "you": true,
}

// BuildMailQuery composes a provider search query from natural language.
// Boolean words map to predicates, "from X" extracts a sender, and the
// remaining non-stop-word tokens are OR-joined as free-text matches.
func BuildMailQuery(request string) string {
	lower := strings.ToLower(request)
	var parts []string
	consumed := map[string]bool{}

	if strings.Contains(lower, "unread") {
		parts = append(parts, "is:unread")
		consumed["unread"] = true
	}
	if strings.Contains(lower, "important") {
		parts = append(parts, "is:important")
		consumed["important"] = true
	}
	if strings.Contains(lower, "starred") {
		parts = append(parts, "is:starred")
		consumed["starred"] = true
	}

	if m := fromRegex.FindStringSubmatch(request); m != nil {
		parts = append(parts, "from:"+strings.ToLower(m[1]))
		consumed["from"] = true
		consumed[strings.ToLower(m[1])] = true
	}

	var terms []string
	for _, token := range strings.Fields(lower) {
		token = strings.Trim(token, ".,!?\"'()")
		if token == "" || stopWords[token] || consumed[token] {
			continue
		}
		if emailAddressRegex.MatchString(token) {
			continue
		}
		terms = append(terms, token)
	}
	if len(terms) > 0 {
		if len(terms) == 1 {
			parts = append(parts, terms[0])
		} else {
			parts = append(parts, "("+strings.Join(terms, " OR ")+")")
		}
	}

	return strings.Join(parts, " ")
}
