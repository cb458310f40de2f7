package matching

// Limits bounds how many bean matches a caller may ask for.
type Limits struct {
	DefaultLimit int `mapstructure:"default_limit"`
	MaxLimit     int `mapstructure:"max_limit"`
}

// DefaultLimits returns a reasonable baseline.
func DefaultLimits() Limits {
	return Limits{
		DefaultLimit: defaultBeanLimit,
		MaxLimit:     50,
	}
}

// Resolve maps a requested limit into [1, MaxLimit]; non-positive requests get DefaultLimit.
func (l Limits) Resolve(requested int) int {
	def := l.DefaultLimit
	if def <= 0 {
		def = defaultBeanLimit
	}
	if requested <= 0 {
		requested = def
	}
	if l.MaxLimit > 0 && requested > l.MaxLimit {
		requested = l.MaxLimit
	}
	return requested
}
