package domain

import "strings"

// SlotCount is the number of fixed image positions in a workspace.
const SlotCount = 2

// EncodedImage is a MIME type paired with a standard base64 payload.
type EncodedImage struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

// IsZero reports whether the image carries no payload.
func (e EncodedImage) IsZero() bool {
	return strings.TrimSpace(e.Data) == ""
}

// DataURI renders the image as a data: URI suitable for an <img> source.
func (e EncodedImage) DataURI() string {
	return "data:" + e.MIMEType + ";base64," + e.Data
}
