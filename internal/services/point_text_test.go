package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"progulka/internal/models/db_models"
)

func TestBuildPointTextAllSections(t *testing.T) {
	point := &db_models.Point{
		ID:          "gorky-park",
		Description: "A large park by the river.",
		Tags:        []string{"park", "walk"},
		Interests: []db_models.Interest{
			{ID: "nature", Label: "Nature"},
			{ID: "art", Label: "Art"},
		},
		Moods: []db_models.Mood{
			{ID: "relax", Label: "Relax"},
		},
	}

	got := BuildPointText(point)

	want := "A large park by the river.\n" +
		"Tags: park, walk\n" +
		"Interests: Art, Nature\n" +
		"Moods: Relax"
	assert.Equal(t, want, got)
}

func TestBuildPointTextOmitsEmptySections(t *testing.T) {
	point := &db_models.Point{
		ID:          "plain",
		Description: "Just a description.",
	}

	got := BuildPointText(point)

	assert.Equal(t, "Just a description.", got)
	assert.NotContains(t, got, "Tags:")
	assert.NotContains(t, got, "Interests:")
	assert.NotContains(t, got, "Moods:")
}

func TestBuildPointTextDeterministicAcrossLoadOrder(t *testing.T) {
	first := &db_models.Point{
		ID:          "p",
		Description: "Desc",
		Interests: []db_models.Interest{
			{ID: "food", Label: "Food"},
			{ID: "art", Label: "Art"},
		},
	}
	second := &db_models.Point{
		ID:          "p",
		Description: "Desc",
		Interests: []db_models.Interest{
			{ID: "art", Label: "Art"},
			{ID: "food", Label: "Food"},
		},
	}

	assert.Equal(t, BuildPointText(first), BuildPointText(second))
}
