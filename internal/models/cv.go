// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurriculumVitae holds the structured resume data rendered on the about
// page and used to populate its metadata.
type CurriculumVitae struct {
	Name     string   `yaml:"name"`
	Tagline  string   `yaml:"tagline"`
	Summary  string   `yaml:"summary"`
	Location string   `yaml:"location"`
	Links    []CVLink `yaml:"links"`

	Experience []CVEntry `yaml:"experience"`
	Education  []CVEntry `yaml:"education"`
	Skills     []string  `yaml:"skills"`
}

// CVLink is one contact or profile link (email, GitHub, LinkedIn).
type CVLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// CVEntry is one dated entry in the experience or education sections.
type CVEntry struct {
	Title   string `yaml:"title"`
	Org     string `yaml:"org"`
	Period  string `yaml:"period"`
	Summary string `yaml:"summary"`
}

// LoadCV reads and parses a CurriculumVitae from a YAML file. A missing
// file is not an error for the site as a whole — callers render the about
// page without the resume section in that case.
func LoadCV(path string) (*CurriculumVitae, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cv file: %w", err)
	}

	var cv CurriculumVitae
	if err := yaml.Unmarshal(data, &cv); err != nil {
		return nil, fmt.Errorf("parse cv file: %w", err)
	}
	return &cv, nil
}
