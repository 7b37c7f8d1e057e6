package types

// SonarModel identifies the echosounder that produced a dataset.
//
// The set is closed: a dataset's keywords attribute must name one of the
// models below. Switches over SonarModel are checked by the exhaustive linter.
type SonarModel int

const (
	// SonarUnknown is the zero value and never results from a successful parse.
	SonarUnknown SonarModel = iota
	// SonarEK60 is the Simrad EK60 narrowband echosounder.
	SonarEK60
	// SonarEK80 is the Simrad EK80 wideband echosounder.
	SonarEK80
	// SonarAZFP is the ASL Acoustic Zooplankton Fish Profiler.
	SonarAZFP
)

// Keyword values as written to the dataset's keywords attribute.
const (
	KeywordEK60 = "EK60"
	KeywordEK80 = "EK80"
	KeywordAZFP = "AZFP"
)

// ParseSonarModel maps a keywords value to a SonarModel.
//
// Matching is exact and case-sensitive.
func ParseSonarModel(keyword string) (SonarModel, bool) {
	switch keyword {
	case KeywordEK60:
		return SonarEK60, true
	case KeywordEK80:
		return SonarEK80, true
	case KeywordAZFP:
		return SonarAZFP, true
	default:
		return SonarUnknown, false
	}
}

// String returns the keyword for the model.
func (m SonarModel) String() string {
	switch m {
	case SonarEK60:
		return KeywordEK60
	case SonarEK80:
		return KeywordEK80
	case SonarAZFP:
		return KeywordAZFP
	case SonarUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Manufacturer returns the instrument vendor for the model.
func (m SonarModel) Manufacturer() string {
	switch m {
	case SonarEK60, SonarEK80:
		return "Simrad"
	case SonarAZFP:
		return "ASL Environmental Sciences"
	case SonarUnknown:
		return ""
	default:
		return ""
	}
}
