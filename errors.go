package reflex

import "fmt"

// ConfigError reports author-supplied response configuration that cannot be
// executed: a missing target reference, an out-of-range enumeration, or a
// name absent from the target. Configuration errors are detected when the
// response is bound and are never retried.
type ConfigError struct {
	Response string // response kind, e.g. "material"
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("reflex: %s response: %s", e.Response, e.Reason)
}

func configErrorf(response, format string, args ...any) *ConfigError {
	return &ConfigError{Response: response, Reason: fmt.Sprintf(format, args...)}
}
