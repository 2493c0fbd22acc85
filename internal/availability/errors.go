package availability

import "errors"

// ErrUnknownService is returned in strict mode when a candidate names a service without a rule
var ErrUnknownService = errors.New("availability: unknown service")
