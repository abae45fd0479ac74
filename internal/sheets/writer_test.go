package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildValuesHeaderFirst(t *testing.T) {
	vr := BuildValues(
		[]string{"name", "stars"},
		[][]string{
			{"org/a", "5"},
			{"org/b", "80"},
		},
	)

	require.Len(t, vr.Values, 3)
	assert.Equal(t, []interface{}{"name", "stars"}, vr.Values[0])
	assert.Equal(t, []interface{}{"org/a", "5"}, vr.Values[1])
	assert.Equal(t, []interface{}{"org/b", "80"}, vr.Values[2])
}

func TestBuildValuesEmptyResultKeepsHeader(t *testing.T) {
	vr := BuildValues([]string{"name", "stars"}, nil)
	require.Len(t, vr.Values, 1, "an empty run still writes the header row")
	assert.Equal(t, []interface{}{"name", "stars"}, vr.Values[0])
}

func TestBuildValuesAllCellsAreText(t *testing.T) {
	vr := BuildValues([]string{"stars"}, [][]string{{"42"}})
	_, ok := vr.Values[1][0].(string)
	assert.True(t, ok, "numeric fields are serialized as text")
}
