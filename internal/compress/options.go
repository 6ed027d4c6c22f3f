package compress

// Options configure the optimizer.
type Options struct {
	// Unused enables passes that drop unused or constant bindings,
	// parameter inlining among them.
	Unused bool
	// Passes caps optimizer iterations; the loop stops earlier once an
	// iteration changes nothing.
	Passes int
	// PreserveArgPositions removes an inlined parameter only when every
	// later parameter is removed too, so remaining parameters keep their
	// positions.
	PreserveArgPositions bool
}

const defaultPasses = 2

func DefaultOptions() Options {
	return Options{Unused: true, Passes: defaultPasses}
}

func (o Options) passes() int {
	if o.Passes <= 0 {
		return 1
	}
	return o.Passes
}
