package elefren

import (
	"regexp"
	"strings"
)

// linkURLRegexp matches the URL portion of one Link header segment.
var linkURLRegexp = regexp.MustCompile(`^<([^>]+)>`)

// linkRelations holds the pagination URLs extracted from the Link headers of
// a list response. Empty fields mean the relation was absent.
type linkRelations struct {
	next string
	prev string
}

// parseLinkHeader extracts the next/prev relations from the given Link header
// values. Segments without a <url> part or a rel parameter are skipped, as
// are unknown relations; a missing or entirely malformed header yields empty
// relations, never an error.
func parseLinkHeader(headers []string) linkRelations {
	var rels linkRelations
	for _, header := range headers {
		for _, segment := range strings.Split(header, ",") {
			segment = strings.TrimSpace(segment)
			match := linkURLRegexp.FindStringSubmatch(segment)
			if match == nil {
				continue
			}
			switch segmentRel(segment[len(match[0]):]) {
			case "next":
				rels.next = match[1]
			case "prev":
				rels.prev = match[1]
			}
		}
	}
	return rels
}

// segmentRel returns the value of the rel parameter in a segment's parameter
// list, with surrounding quotes stripped, or "" when there is none.
func segmentRel(params string) string {
	for _, param := range strings.Split(params, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || strings.TrimSpace(name) != "rel" {
			continue
		}
		return strings.Trim(strings.TrimSpace(value), `"`)
	}
	return ""
}
