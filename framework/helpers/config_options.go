package helpers

// ConfigOption is implemented by the functional options accepted by the HTTP client, the
// harness and the mock API.
type ConfigOption[T any] interface {
	Configure(*T) error
}

// ApplyOptions applies each option to the target in order, stopping at the first error.
func ApplyOptions[T any, U ConfigOption[T]](target *T, options ...U) error {
	// U lets callers pass a slice of their own named option type.
	for _, o := range options {
		if err := o.Configure(target); err != nil {
			return err
		}
	}
	return nil
}
