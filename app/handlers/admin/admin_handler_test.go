package admin

import (
	"testing"

	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/stretchr/testify/assert"
)

func TestParseDisplayOrder(t *testing.T) {
	assert.Equal(t, 0, parseDisplayOrder(""))
	assert.Equal(t, 0, parseDisplayOrder("  "))
	assert.Equal(t, 0, parseDisplayOrder("abc"))
	assert.Equal(t, 3, parseDisplayOrder("3"))
	assert.Equal(t, 7, parseDisplayOrder(" 7 "))
	assert.Equal(t, -1, parseDisplayOrder("-1"))
}

func TestBuildSpecMap(t *testing.T) {
	specs := buildSpecMap(
		[]string{"size", "color", "", "size"},
		[]string{"10 inch", "Gold", "ignored", "12 inch"},
	)

	// Blank keys are dropped; a repeated key keeps its last value.
	assert.Equal(t, models.SpecMap{"size": "12 inch", "color": "Gold"}, specs)
}

func TestBuildSpecMapUnpairedKeysDropped(t *testing.T) {
	specs := buildSpecMap([]string{"size", "color"}, []string{"10 inch"})
	assert.Equal(t, models.SpecMap{"size": "10 inch"}, specs)
}

func TestDedupeTags(t *testing.T) {
	tags := dedupeTags([]string{"luxury", " gold ", "", "luxury", "gold"})
	assert.Equal(t, models.TagList{"luxury", "gold"}, tags)
}

func TestOptionalID(t *testing.T) {
	assert.Nil(t, optionalID(""))
	assert.Nil(t, optionalID("   "))

	id := optionalID("abc-123")
	if assert.NotNil(t, id) {
		assert.Equal(t, "abc-123", *id)
	}
}
