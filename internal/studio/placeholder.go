package studio

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"sync"

	"imagestudio/internal/domain"
)

const placeholderSize = 256

var placeholders [domain.SlotCount]func() domain.EncodedImage

func init() {
	for i := range placeholders {
		index := i
		placeholders[i] = sync.OnceValue(func() domain.EncodedImage {
			return renderPlaceholder(index)
		})
	}
}

// Placeholder returns the preview shown for an empty slot. It is never stored
// in the slot itself, so an empty slot still selects text-to-image.
func Placeholder(index int) domain.EncodedImage {
	if index < 0 || index >= domain.SlotCount {
		return domain.EncodedImage{}
	}
	return placeholders[index]()
}

func renderPlaceholder(index int) domain.EncodedImage {
	seed := deterministicSeed("slot", index)
	img := image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{colorFromSeed(seed, 0)}, image.Point{}, draw.Src)

	accent := colorFromSeed(seed, 1)
	accent.A = 96
	stripe := placeholderSize / 16
	for y := 0; y < placeholderSize; y += stripe * 2 {
		band := image.Rect(0, y, placeholderSize, min(placeholderSize, y+stripe))
		draw.Draw(img, band, &image.Uniform{accent}, image.Point{}, draw.Over)
	}

	// plus sign marking an empty drop target
	mark := color.RGBA{R: 255, G: 255, B: 255, A: 220}
	mid, arm, thick := placeholderSize/2, placeholderSize/6, placeholderSize/32
	draw.Draw(img, image.Rect(mid-arm, mid-thick, mid+arm, mid+thick), &image.Uniform{mark}, image.Point{}, draw.Over)
	draw.Draw(img, image.Rect(mid-thick, mid-arm, mid+thick, mid+arm), &image.Uniform{mark}, image.Point{}, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return domain.EncodedImage{}
	}
	return domain.EncodedImage{
		MIMEType: "image/png",
		Data:     base64.StdEncoding.EncodeToString(buf.Bytes()),
	}
}

func colorFromSeed(seed string, shift int) color.RGBA {
	doubled := seed + seed
	start := (shift * 6) % len(seed)
	segment := doubled[start : start+6]
	return color.RGBA{
		R: parseHexByte(segment[0:2]),
		G: parseHexByte(segment[2:4]),
		B: parseHexByte(segment[4:6]),
		A: 255,
	}
}

func parseHexByte(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

func deterministicSeed(parts ...any) string {
	hasher := sha256.New()
	for _, part := range parts {
		hasher.Write([]byte(fmt.Sprintf("%v", part)))
		hasher.Write([]byte{'|'})
	}
	return hex.EncodeToString(hasher.Sum(nil))[:16]
}
