package dashboard

import "errors"

// ErrEmptyPayload is reported when a fetch returned no payload at all.
var ErrEmptyPayload = errors.New("dashboard: empty forecast payload")
