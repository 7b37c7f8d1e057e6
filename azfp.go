package echoproc

// ProcessAZFP processes datasets recorded by an ASL Acoustic Zooplankton
// Fish Profiler.
type ProcessAZFP struct {
	processBase
}

// NewProcessAZFP builds an AZFP processing object for the dataset at path.
func NewProcessAZFP(path string, opts ...Option) (*ProcessAZFP, error) {
	base, err := newProcessBase(SonarAZFP, path, opts)
	if err != nil {
		return nil, err
	}
	return &ProcessAZFP{processBase: base}, nil
}
