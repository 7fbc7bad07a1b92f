package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCopiesTags(t *testing.T) {
	tpl := Template{ID: "t1", Name: "Daily Progress", ContentTemplate: "Today I worked on:", DefaultTags: []string{"daily"}}

	first := Apply(tpl)
	second := Apply(tpl)
	assert.Equal(t, "Today I worked on:", first.Content)
	assert.Equal(t, []string{"daily"}, first.Tags)

	first.Tags[0] = "mutated"
	first.Tags = append(first.Tags, "extra")
	assert.Equal(t, []string{"daily"}, tpl.DefaultTags)
	assert.Equal(t, []string{"daily"}, second.Tags)
}

func TestApplyWithoutTags(t *testing.T) {
	d := Apply(Template{ContentTemplate: "x"})
	assert.NotNil(t, d.Tags)
	assert.Empty(t, d.Tags)
	assert.Empty(t, d.Title)
}

func TestFind(t *testing.T) {
	n := 0
	ids := func() string { n++; return string(rune('a' + n)) }
	list := Samples(ids)
	require.Len(t, list, 2)

	got, ok := Find(list, list[1].ID)
	require.True(t, ok)
	assert.Equal(t, "Material Test", got.Name)

	_, ok = Find(list, "missing")
	assert.False(t, ok)
	assert.Equal(t, "", Empty().Content)
	assert.Equal(t, []string{}, Empty().Tags)
}
