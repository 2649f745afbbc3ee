package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tranvictor/lensens/lens"
)

func TestSelectValue(t *testing.T) {
	attrs := []lens.Attribute{
		{Key: "website", Value: "https://me3.eth.limo/#/charchar.eth"},
		{Key: "twitter", Value: "0xcharchar"},
		{Key: "twitter", Value: "shadowed"},
		{Key: "empty", Value: ""},
	}

	v, found := SelectValue(attrs, "twitter")
	assert.True(t, found)
	assert.Equal(t, "0xcharchar", v)

	v, found = SelectValue(attrs, "empty")
	assert.True(t, found)
	assert.Equal(t, "", v)

	_, found = SelectValue(attrs, "Twitter")
	assert.False(t, found)

	_, found = SelectValue(nil, "twitter")
	assert.False(t, found)
}
