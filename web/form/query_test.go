package form

import (
	"net/url"
	"testing"

	"extractor/database/model"

	"github.com/stretchr/testify/assert"
)

func TestQueryFormAssign(t *testing.T) {
	f := NewQueryForm()
	f.Bind(url.Values{
		"latitude":   {"48.85"},
		"longitude":  {"2.35"},
		"distance":   {"10"},
		"department": {"water"},
		"year":       {"2019"},
	})

	assert.True(t, f.IsValid())

	query := model.Query{}
	f.Assign(&query)
	assert.Equal(t, "48.85", query.Latitude)
	assert.Equal(t, "2.35", query.Longitude)
	assert.Equal(t, "10", query.Distance)
	assert.Equal(t, "water", query.Department)
	if assert.NotNil(t, query.Year) {
		assert.Equal(t, "2019", *query.Year)
	}
	assert.Nil(t, query.InputTextType)
	assert.Nil(t, query.InputTextCapacity)
}

func TestQueryFormRequiredCoordinates(t *testing.T) {
	f := NewQueryForm()
	f.Bind(url.Values{"department": {"gas"}})

	assert.False(t, f.IsValid())
	for _, name := range []string{"latitude", "longitude", "distance"} {
		assert.Equal(t, []string{"This field is required."}, f.ErrorsFor(name), name)
	}
}
