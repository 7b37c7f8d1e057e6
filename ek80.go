package echoproc

// ProcessEK80 processes datasets recorded by a Simrad EK80 wideband
// echosounder.
type ProcessEK80 struct {
	processBase
}

// NewProcessEK80 builds an EK80 processing object for the dataset at path.
func NewProcessEK80(path string, opts ...Option) (*ProcessEK80, error) {
	base, err := newProcessBase(SonarEK80, path, opts)
	if err != nil {
		return nil, err
	}
	return &ProcessEK80{processBase: base}, nil
}
