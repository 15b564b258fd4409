package repository

// Option applies a configuration option to the TreapStore.
type Option func(*TreapStore)

// WithCapacity preallocates room for n bacchiatori.
func WithCapacity(n int) Option {
	return func(s *TreapStore) {
		if n > 0 {
			s.capacity = n
		}
	}
}
