package fetch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SourceMap maps a HamLib filename to the URL of the archive carrying it.
// It is passed explicitly to FetchAndUnpack rather than living in package
// state, so alternative mirrors are a matter of configuration.
type SourceMap map[string]string

// DefaultSources returns the built-in HamLib portal mappings.
func DefaultSources() SourceMap {
	return SourceMap{
		"tfim.hdf5":        "https://portal.nersc.gov/cfs/m888/dcamps/hamlib/condensedmatter/tfim/tfim.zip",
		"FH_D-1.hdf5":      "https://portal.nersc.gov/cfs/m888/dcamps/hamlib/condensedmatter/fermihubbard/FH_D-1.zip",
		"all-vib-h2o.hdf5": "https://portal.nersc.gov/cfs/m888/dcamps/hamlib/chemistry/vibrational/",
	}
}

// sourcesFile is the YAML shape of a source-mapping file:
//
//	sources:
//	  tfim.hdf5: https://example.org/mirrors/tfim.zip
type sourcesFile struct {
	Sources map[string]string `yaml:"sources"`
}

// LoadSources reads a SourceMap from a YAML file.
func LoadSources(path string) (SourceMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sources file: %w", err)
	}
	var f sourcesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing sources file %s: %w", path, err)
	}
	if len(f.Sources) == 0 {
		return nil, fmt.Errorf("sources file %s maps no filenames", path)
	}
	return SourceMap(f.Sources), nil
}

// Merge returns a copy of m with entries from overrides layered on top.
// Neither input is modified.
func (m SourceMap) Merge(overrides SourceMap) SourceMap {
	merged := make(SourceMap, len(m)+len(overrides))
	for name, url := range m {
		merged[name] = url
	}
	for name, url := range overrides {
		merged[name] = url
	}
	return merged
}
