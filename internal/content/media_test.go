package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitMedia(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		text   string
		images []string
	}{
		{
			name: "no markers",
			raw:  "plain text without images",
			text: "plain text without images",
		},
		{
			name:   "single marker",
			raw:    "see the table img:tables/table_01.png below",
			text:   "see the table  below",
			images: []string{"tables/table_01.png"},
		},
		{
			name:   "multiple markers in order",
			raw:    "img:a.png first img:b.png second",
			text:   "first  second",
			images: []string{"a.png", "b.png"},
		},
		{
			name:   "marker only",
			raw:    "img:diagram.png",
			text:   "",
			images: []string{"diagram.png"},
		},
		{
			name: "empty input",
			raw:  "",
			text: "",
		},
		{
			name:   "marker stops at whitespace",
			raw:    "img:one.png\timg:two.png",
			text:   "",
			images: []string{"one.png", "two.png"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, images := SplitMedia(tt.raw)
			assert.Equal(t, tt.text, text)
			assert.Equal(t, tt.images, images)
		})
	}
}
