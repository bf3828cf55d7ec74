package messageformat

import "fmt"

// Option configures a MessageFormat engine during construction.
type Option func(*MessageFormat) error

// WithMaxDepth sets the maximum message nesting depth accepted by the
// parser and the validator.
func WithMaxDepth(depth int) Option {
	return func(mf *MessageFormat) error {
		if depth <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidMaxDepth, depth)
		}
		mf.maxDepth = depth
		return nil
	}
}

// WithMaxLength sets the maximum raw template length in bytes.
func WithMaxLength(length int) Option {
	return func(mf *MessageFormat) error {
		if length <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidMaxLength, length)
		}
		mf.maxLength = length
		return nil
	}
}

// WithCacheCapacity sets the maximum number of compiled templates kept in
// the LRU cache.
func WithCacheCapacity(capacity int) Option {
	return func(mf *MessageFormat) error {
		if capacity <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidCacheCapacity, capacity)
		}
		mf.cacheCapacity = capacity
		return nil
	}
}

// WithoutOtherRequirement relaxes validation so branching constructs no
// longer need an "other" case.
func WithoutOtherRequirement() Option {
	return func(mf *MessageFormat) error {
		mf.requireOther = false
		return nil
	}
}

// WithFormatter registers a custom value formatter during construction.
func WithFormatter(name string, f Formatter) Option {
	return func(mf *MessageFormat) error {
		if name == "" {
			return ErrEmptyFormatterName
		}
		if f == nil {
			return ErrNilFormatter
		}
		mf.registry.Register(name, f)
		return nil
	}
}
