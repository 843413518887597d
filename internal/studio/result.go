package studio

// Result is the normalized outcome of one dispatch: ImageResult,
// NoImageProduced or Failure.
type Result interface {
	result()
}

// ImageResult carries the first image returned by the remote service.
type ImageResult struct {
	MIMEType string
	Data     string
}

// NoImageProduced means the call completed but returned no image. The remote
// service may legitimately decline, so this is not an error.
type NoImageProduced struct{}

// Failure wraps the message of a remote or transport error.
type Failure struct {
	Message string
}

func (ImageResult) result()     {}
func (NoImageProduced) result() {}
func (Failure) result()         {}
