package scrape

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

// Correction is a catalog entry the parser cannot read correctly, supplied
// by hand. Department and prerequisites are derived from it like any row.
type Correction struct {
	Course string `yaml:"course"`
	Text   string `yaml:"text"`
}

// DefaultCorrections patches the two MATH entries the catalog lists in a
// layout the row parser misreads.
var DefaultCorrections = []Correction{
	{
		Course: "MATH 026",
		Text: "For students who place out of the first half of MATH 025. " +
			"This course goes into more depth on sequences, series, and " +
			"differential equations than does MATH 025. Students may not take " +
			"MATH 026 for credit after MATH 025 without special permission.\n" +
			"Prerequisite: Placement by examination (see \"Advanced Placement and " +
			"Credit Policy\" section).\nNatural sciences and engineering.\n" +
			"1 credit.\nFall 2018. Goldwyn.\nFall 2019. Staff.\nCatalog chapter: " +
			"Mathematics and Statistics\nDepartment website: " +
			"http://www.swarthmore.edu/mathematics-statistics",
	},
	{
		Course: "MATH 028S",
		Text:   "Prerequisite: Placement by examination",
	},
}

type correctionsFile struct {
	Corrections []Correction `yaml:"corrections"`
}

// LoadCorrections reads a YAML list of corrections:
//
//	corrections:
//	  - course: MATH 028S
//	    text: "Prerequisite: Placement by examination"
func LoadCorrections(path string) ([]Correction, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corrections: %w", err)
	}
	var file correctionsFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("failed to parse corrections %s: %w", path, err)
	}
	for i, c := range file.Corrections {
		if c.Course == "" {
			return nil, fmt.Errorf("correction %d in %s has no course", i+1, path)
		}
	}
	return file.Corrections, nil
}
