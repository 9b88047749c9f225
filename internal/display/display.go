package display

import "github.com/junsooki/camview/internal/frame"

// Display presents frames until the user closes it.
type Display interface {
	Run() error
}

// FrameSource provides a freshly generated frame on every call.
type FrameSource interface {
	Name() string
	GenerateImage() *frame.Frame
}
