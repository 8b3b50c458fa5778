package services

import (
	"sort"
	"strings"

	"progulka/internal/models/db_models"
)

// BuildPointText derives the text a point is embedded from. Identical point
// state always yields identical output: sections appear in a fixed order and
// vocabulary labels are sorted so association load order cannot leak in.
// Empty sections are omitted entirely.
func BuildPointText(point *db_models.Point) string {
	parts := []string{point.Description}

	if len(point.Tags) > 0 {
		parts = append(parts, "Tags: "+strings.Join(point.Tags, ", "))
	}

	if len(point.Interests) > 0 {
		labels := make([]string, 0, len(point.Interests))
		for _, interest := range point.Interests {
			labels = append(labels, interest.Label)
		}
		sort.Strings(labels)
		parts = append(parts, "Interests: "+strings.Join(labels, ", "))
	}

	if len(point.Moods) > 0 {
		labels := make([]string, 0, len(point.Moods))
		for _, mood := range point.Moods {
			labels = append(labels, mood.Label)
		}
		sort.Strings(labels)
		parts = append(parts, "Moods: "+strings.Join(labels, ", "))
	}

	return strings.Join(parts, "\n")
}
