package echoproc

// ProcessEK60 processes datasets recorded by a Simrad EK60 narrowband
// echosounder.
type ProcessEK60 struct {
	processBase
}

// NewProcessEK60 builds an EK60 processing object for the dataset at path.
func NewProcessEK60(path string, opts ...Option) (*ProcessEK60, error) {
	base, err := newProcessBase(SonarEK60, path, opts)
	if err != nil {
		return nil, err
	}
	return &ProcessEK60{processBase: base}, nil
}
