package ranking

// Default builder capacities.
const (
	defaultBacchiatoriCapacity = 8
	defaultDuelsCapacity       = 32
)

type builderOptions struct {
	bacchiatori int
	duels       int
}

// Option applies a configuration option to a Builder.
type Option func(*builderOptions)

// WithCapacity preallocates room for the expected number of bacchiatori and duels.
func WithCapacity(bacchiatori, duels int) Option {
	return func(o *builderOptions) {
		if bacchiatori > 0 {
			o.bacchiatori = bacchiatori
		}
		if duels > 0 {
			o.duels = duels
		}
	}
}
