package hub

import "errors"

var ErrClosed = errors.New("hub client is closed")
