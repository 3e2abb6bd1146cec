package transition

import (
	"os"

	"gopkg.in/yaml.v3"
)

// FeatureSetup is the on-disk feature configuration: named groups of
// feature template specifications.
//
//	feature groups:
//	  - group: base
//	    features: ["S0|w", "S0|p", "N0|w|p"]
//	  - group: context
//	    features: ["S0|p+N0|p", "N1|p"]
type FeatureSetup struct {
	FeatureGroups []FeatureGroup `yaml:"feature groups"`
}

type FeatureGroup struct {
	Group    string   `yaml:"group"`
	Features []string `yaml:"features"`
}

func (s *FeatureSetup) NumFeatures() int {
	num := 0
	for _, group := range s.FeatureGroups {
		num += len(group.Features)
	}
	return num
}

func LoadFeatureConf(data []byte) (*FeatureSetup, error) {
	setup := new(FeatureSetup)
	if err := yaml.Unmarshal(data, setup); err != nil {
		return nil, err
	}
	return setup, nil
}

func LoadFeatureConfFile(filename string) (*FeatureSetup, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadFeatureConf(data)
}
