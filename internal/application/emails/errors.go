package emails

import "errors"

var ErrNotConfigured = errors.New("email sender is not configured")
