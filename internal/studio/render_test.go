package studio

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want View
	}{
		{
			name: "image",
			res:  ImageResult{MIMEType: "image/png", Data: "AAAA"},
			want: View{Kind: ViewImage, ShowImage: true, ImageSrc: "data:image/png;base64,AAAA"},
		},
		{
			name: "no image",
			res:  NoImageProduced{},
			want: View{Kind: ViewNoImage, Status: NoImageMessage},
		},
		{
			name: "failure",
			res:  Failure{Message: "permission denied"},
			want: View{Kind: ViewError, Status: "error: permission denied"},
		},
		{
			name: "nil",
			res:  nil,
			want: View{Kind: ViewError, Status: "error: no result"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.res))
		})
	}
}

func TestPlaceholder(t *testing.T) {
	first := Placeholder(0)
	require.Equal(t, "image/png", first.MIMEType)
	assert.Equal(t, first, Placeholder(0))
	assert.NotEqual(t, first.Data, Placeholder(1).Data)
	assert.True(t, Placeholder(5).IsZero())

	raw, err := Decode(first)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, placeholderSize, img.Bounds().Dx())
}
