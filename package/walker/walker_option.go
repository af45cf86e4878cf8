package walker

type Option func(inspector *Inspector)

func WithNaming(naming Naming) Option {
	return func(inspector *Inspector) {
		inspector.naming = naming
	}
}

// WithDepth sets the initial program counter buffer. The buffer doubles until
// the whole stack fits.
func WithDepth(depth int) Option {
	return func(inspector *Inspector) {
		if depth > 0 {
			inspector.depth = depth
		}
	}
}

// WithRuntime keeps frames of package runtime, such as runtime.goexit, in the
// walk.
func WithRuntime(runtime bool) Option {
	return func(inspector *Inspector) {
		inspector.runtime = runtime
	}
}

// WithExclude hides every frame whose fully qualified function name starts
// with one of prefixes. Hidden frames do not count toward skip.
func WithExclude(prefixes ...string) Option {
	return func(inspector *Inspector) {
		for _, prefix := range prefixes {
			if prefix != "" {
				inspector.exclude = append(inspector.exclude, prefix)
			}
		}
	}
}
