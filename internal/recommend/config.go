package recommend

// Config holds the engine parameters. The defaults reproduce the production
// scoring and search behavior; tests and experiments may vary them.
type Config struct {
	// TagWeight is the score contribution per matched preference tag.
	TagWeight int
	// SweetBase bounds the sweetness-closeness bonus: an item scores
	// max(0, SweetBase - |sweetness - target|).
	SweetBase int
	// PopularBonus is the flat addition for items flagged popular.
	PopularBonus int
	// PoolCeiling truncates the ranked candidate pool before combination
	// search. Items ranked below it never appear in a bundle.
	PoolCeiling int
	// MaxBundleSize is the largest number of items in one bundle.
	MaxBundleSize int
	// TopK is the default number of bundles returned.
	TopK int
	// MaxAttempts is the retry ceiling for the pairing sampler.
	MaxAttempts int
}

func DefaultConfig() Config {
	return Config{
		TagWeight:     3,
		SweetBase:     3,
		PopularBonus:  3,
		PoolCeiling:   12,
		MaxBundleSize: 3,
		TopK:          3,
		MaxAttempts:   100,
	}
}
