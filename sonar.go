package echoproc

import (
	"github.com/simonhull/echoproc/internal/types"
)

// SonarModel identifies the echosounder that produced a dataset.
type SonarModel = types.SonarModel

// Supported echosounders.
const (
	SonarUnknown = types.SonarUnknown
	SonarEK60    = types.SonarEK60
	SonarEK80    = types.SonarEK80
	SonarAZFP    = types.SonarAZFP
)

// KeywordsAttribute is the global attribute that names the echosounder.
const KeywordsAttribute = types.KeywordsAttribute

// ParseSonarModel maps a keywords value ("EK60", "EK80", "AZFP") to a
// SonarModel. Matching is exact.
func ParseSonarModel(keyword string) (SonarModel, bool) {
	return types.ParseSonarModel(keyword)
}
