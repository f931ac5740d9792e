package binder

const (
	// DefaultMaxBodySize limits JSON and urlencoded bodies.
	DefaultMaxBodySize int64 = 1 << 20
	// DefaultMaxMemory is the part of a multipart body kept in memory; the
	// rest of the files go to temporary files.
	DefaultMaxMemory int64 = 10 << 20
	// DefaultMaxMultipartSize limits whole multipart bodies, files included.
	DefaultMaxMultipartSize int64 = 32 << 20
)

// Option configures the sources and Bind.
type Option func(*options)

type options struct {
	maxBodySize      int64
	maxMemory        int64
	maxMultipartSize int64
	source           Source
}

func newOptions(opts []Option) options {
	o := options{
		maxBodySize:      DefaultMaxBodySize,
		maxMemory:        DefaultMaxMemory,
		maxMultipartSize: DefaultMaxMultipartSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxBodySize limits the size of JSON and urlencoded bodies.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodySize = n
		}
	}
}

// WithMaxMemory sets the memory budget for multipart forms.
func WithMaxMemory(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMemory = n
		}
	}
}

// WithMaxMultipartSize limits the size of multipart bodies.
func WithMaxMultipartSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMultipartSize = n
		}
	}
}

// WithSource makes Bind read from src instead of picking a source with Values.
func WithSource(src Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}
