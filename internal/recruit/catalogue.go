package recruit

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalogue.yaml
var catalogueYAML []byte

// JobCategory 직무 카테고리와 하위 역할 ENUM
type JobCategory struct {
	Name  string   `yaml:"name"`
	Roles []string `yaml:"roles"`
}

// JobCategories keeps the catalogue order when rendered as a JSON object.
type JobCategories []JobCategory

func (jc JobCategories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range jc {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		roles := c.Roles
		if roles == nil {
			roles = []string{}
		}
		val, err := json.Marshal(roles)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Catalogue holds every ENUM the recruiting API accepts.
type Catalogue struct {
	JobCategories JobCategories `yaml:"job_categories"`
	CompanyTypes  []string      `yaml:"company_types"`
	ContractTypes []string      `yaml:"contract_types"`
	WorkTypes     []string      `yaml:"work_types"`
	WorkDayTypes  []string      `yaml:"work_day_types"`
	SalaryTypes   []string      `yaml:"salary_types"`
	LanguageTypes []string      `yaml:"language_types"`
	VisaTypes     []string      `yaml:"visa_types"`
}

var (
	defaultCatalogue     *Catalogue
	defaultCatalogueErr  error
	defaultCatalogueOnce sync.Once
)

// ParseCatalogue decodes a catalogue document.
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse recruit catalogue: %w", err)
	}
	if len(c.JobCategories) == 0 {
		return nil, fmt.Errorf("recruit catalogue has no job categories")
	}
	return &c, nil
}

// DefaultCatalogue returns the embedded catalogue.
func DefaultCatalogue() (*Catalogue, error) {
	defaultCatalogueOnce.Do(func() {
		defaultCatalogue, defaultCatalogueErr = ParseCatalogue(catalogueYAML)
	})
	return defaultCatalogue, defaultCatalogueErr
}
