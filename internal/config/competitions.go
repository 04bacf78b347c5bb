package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"football-stats-service/internal/domain/competitions"
)

// DefaultCompetitions maps the client's competition codes to dataset ids.
// Eredivisie, Brasileirão and Primeira Liga are not published in the open data.
func DefaultCompetitions() []competitions.Code {
	return []competitions.Code{
		{Code: "WC", ID: 43, Country: "International"},
		{Code: "CL", ID: 16, Country: "Europe"},
		{Code: "BL1", ID: 9, Country: "Germany"},
		{Code: "PD", ID: 11, Country: "Spain"},
		{Code: "FL1", ID: 7, Country: "France"},
		{Code: "PL", ID: 2, Country: "England"},
		{Code: "SA", ID: 12, Country: "Italy"},
		{Code: "EC", ID: 68, Country: "Europe"},
		{Code: "ELC", ID: 35, Country: "Europe"},
	}
}

type competitionsFile struct {
	Competitions []competitions.Code `yaml:"competitions"`
}

// LoadCompetitions returns the default codes merged with the entries of the YAML
// file at path. File entries override defaults with the same code.
func LoadCompetitions(path string) ([]competitions.Code, error) {
	codes := DefaultCompetitions()
	if path == "" {
		return codes, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read competitions file: %w", err)
	}
	var file competitionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse competitions file %s: %w", path, err)
	}
	return mergeCompetitions(codes, file.Competitions)
}

func mergeCompetitions(base, overrides []competitions.Code) ([]competitions.Code, error) {
	index := make(map[string]int, len(base))
	for i, c := range base {
		index[strings.ToUpper(c.Code)] = i
	}
	for _, o := range overrides {
		code := strings.ToUpper(strings.TrimSpace(o.Code))
		if code == "" || o.ID <= 0 {
			return nil, fmt.Errorf("invalid competition entry %q (id %d)", o.Code, o.ID)
		}
		o.Code = code
		if i, ok := index[code]; ok {
			if o.Country == "" {
				o.Country = base[i].Country
			}
			base[i] = o
			continue
		}
		index[code] = len(base)
		base = append(base, o)
	}
	return base, nil
}
