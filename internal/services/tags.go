package services

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

// ExtractTags pulls tags out of a note body: any word starting with a single
// '#' (so headings with '##' do not count). Order of first appearance is
// kept; duplicates are dropped.
func ExtractTags(body string) []string {
	tags := []string{}
	seen := map[string]bool{}
	for _, line := range strings.Split(body, "\n") {
		for _, w := range strings.Split(line, " ") {
			if !strings.HasPrefix(w, "#") || strings.HasPrefix(w, "##") {
				continue
			}
			t := strings.TrimSpace(w[1:])
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			tags = append(tags, t)
		}
	}
	return tags
}

func tagsToJSON(tags []string) datatypes.JSON {
	b, err := json.Marshal(tags)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

func tagsFromJSON(data datatypes.JSON) []string {
	if len(data) == 0 {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return []string{}
	}
	return tags
}
