package registration

import (
	"strings"

	"teamreg-bot/internal/util"
)

// tagOffset is the first column holding a tag; tags then repeat every
// second column (team, name1, tag1, name2, tag2, ...).
const tagOffset = 2

// TeamNames derives the set of taken team names from a full sheet read,
// folded for case-insensitive comparison.
func TeamNames(rows [][]string) map[string]bool {
	names := map[string]bool{}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := util.FoldName(row[0])
		if name != "" {
			names[name] = true
		}
	}
	return names
}

// Tags derives the set of taken player tags, exact-case, scanning the
// alternating tag columns of every row.
func Tags(rows [][]string) map[string]bool {
	tags := map[string]bool{}
	for _, row := range rows {
		for i := tagOffset; i < len(row); i += 2 {
			tag := strings.TrimSpace(row[i])
			if tag != "" {
				tags[tag] = true
			}
		}
	}
	return tags
}
