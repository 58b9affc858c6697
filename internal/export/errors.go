package export

import "errors"

// ErrNoFrames indicates an animation was requested before any frame arrived.
var ErrNoFrames = errors.New("export: no frames recorded")
