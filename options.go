package chunkmap

// DefaultThreshold is the chunk size used when no threshold has been set.
const DefaultThreshold = 2

// The Options struct defines the configuration for a chunked map.
// The zero value is ready to use and selects DefaultThreshold and no reporting.
type Options struct {
	threshold    int
	thresholdSet bool
	reporter     Reporter
}

// Define the maximum chunk size. Inputs with at most this many items are
// transformed sequentially on the calling goroutine. Zero or a negative value
// is rejected with ErrInvalidConfiguration when the options are used.
func (o Options) WithThreshold(threshold int) Options {
	o.threshold = threshold
	o.thresholdSet = true
	return o
}

// Define the reporter that receives chunk dispatch and fault notifications.
// A nil reporter restores the default, which discards everything.
func (o Options) WithReporter(r Reporter) Options {
	o.reporter = r
	return o
}

// Threshold returns the effective threshold.
func (o Options) Threshold() int {
	if !o.thresholdSet {
		return DefaultThreshold
	}
	return o.threshold
}

func (o Options) validate() error {
	if t := o.Threshold(); t <= 0 {
		return &ConfigError{Option: "threshold", Value: t}
	}
	return nil
}

func (o Options) reporterOrNop() Reporter {
	if o.reporter == nil {
		return NopReporter{}
	}
	return o.reporter
}
