package studio

import "imagestudio/internal/domain"

// NoImageMessage is shown when a call completes without an image.
const NoImageMessage = "No image was produced. Try a different prompt."

// ViewKind tags a rendered View.
type ViewKind string

const (
	ViewImage   ViewKind = "image"
	ViewNoImage ViewKind = "no_image"
	ViewError   ViewKind = "error"
)

// View is what the result area should display.
type View struct {
	Kind      ViewKind `json:"kind"`
	ShowImage bool     `json:"show_image"`
	ImageSrc  string   `json:"image_src,omitempty"`
	Status    string   `json:"status,omitempty"`
}

// Render maps a Result to the result area state. It keeps nothing.
func Render(res Result) View {
	switch r := res.(type) {
	case ImageResult:
		img := domain.EncodedImage{MIMEType: r.MIMEType, Data: r.Data}
		return View{Kind: ViewImage, ShowImage: true, ImageSrc: img.DataURI()}
	case NoImageProduced:
		return View{Kind: ViewNoImage, Status: NoImageMessage}
	case Failure:
		return ErrorView(r.Message)
	default:
		return ErrorView("no result")
	}
}

// ErrorView renders a failure message.
func ErrorView(message string) View {
	return View{Kind: ViewError, Status: "error: " + message}
}
