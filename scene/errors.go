package scene

import "errors"

// ErrInvalidScene wraps every structural problem found in a scene document.
var ErrInvalidScene = errors.New("scene: invalid scene")
