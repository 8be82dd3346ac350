package druginfo

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/hrlabs/druginfo/schema"
)

// BannedDomain is the information source a record's search_url must not
// point at, in any letter case.
const BannedDomain = "psychonautwiki.org"

// MinNotesSentences is the minimum sentence count for the harm reduction
// notes field.
const MinNotesSentences = 3

var sentenceDelimiter = regexp.MustCompile(`[.!?]+`)

// checkSearchURL rejects URLs on the banned domain and URLs that are not
// well-formed http(s) URLs with a host. The ban checks both the parsed
// host and the raw string case-insensitively, so a URL whose host fails
// to parse cannot bypass it.
func checkSearchURL(raw string) *schema.FieldError {
	banned := func() *schema.FieldError {
		return &schema.FieldError{
			Path:    "search_url",
			Message: fmt.Sprintf("must not be a %s URL", BannedDomain),
		}
	}

	u, err := url.Parse(raw)
	if err == nil {
		if host := u.Hostname(); host != "" && strings.Contains(strings.ToLower(host), BannedDomain) {
			return banned()
		}
	}
	if strings.Contains(strings.ToLower(raw), BannedDomain) {
		return banned()
	}

	if err != nil || u.Hostname() == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &schema.FieldError{
			Path:    "search_url",
			Message: "must be a well-formed http or https URL",
		}
	}
	return nil
}

// countSentences counts sentence-terminated segments: the text is split
// on runs of '.', '!' and '?' and blank segments are discarded. A crude
// heuristic, not a linguistic parser; abbreviations count as boundaries.
func countSentences(text string) int {
	n := 0
	for _, seg := range sentenceDelimiter.Split(text, -1) {
		if strings.TrimSpace(seg) != "" {
			n++
		}
	}
	return n
}

// checkNotes enforces the minimum sentence count on harm reduction notes.
func checkNotes(notes string) *schema.FieldError {
	if countSentences(notes) < MinNotesSentences {
		return &schema.FieldError{
			Path:    "notes",
			Message: fmt.Sprintf("must contain at least %d sentences", MinNotesSentences),
		}
	}
	return nil
}

// recordRules applies the record-level rules to a decoded value so their
// failures aggregate with structural and domain violations. Fields of the
// wrong type are left to schema validation to report.
func recordRules(value any) []schema.FieldError {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	var errs []schema.FieldError
	if raw, ok := obj["search_url"].(string); ok {
		if e := checkSearchURL(raw); e != nil {
			errs = append(errs, *e)
		}
	}
	if notes, ok := obj["notes"].(string); ok {
		if e := checkNotes(notes); e != nil {
			errs = append(errs, *e)
		}
	}
	return errs
}
