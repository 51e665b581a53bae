// Package seed loads the reference symptom and disease catalog from YAML
// and writes it to the catalog stores.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the decoded reference catalog
type Catalog struct {
	Symptoms []*entities.Symptom
	Diseases []*entities.Disease
}

type catalogFile struct {
	Symptoms []symptomRecord `yaml:"symptoms"`
	Diseases []diseaseRecord `yaml:"diseases"`
}

type symptomRecord struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

type diseaseRecord struct {
	ID               int                `yaml:"id"`
	Name             string             `yaml:"name"`
	Description      string             `yaml:"description"`
	Symptoms         []int              `yaml:"symptoms"`
	Severity         string             `yaml:"severity"`
	RiskFactors      []string           `yaml:"risk_factors"`
	CommonAgeGroups  []string           `yaml:"common_age_groups"`
	TreatmentOptions []string           `yaml:"treatment_options"`
	Specialists      []specialistRecord `yaml:"specialists"`
}

type specialistRecord struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Contact     string            `yaml:"contact"`
	Location    *coordinateRecord `yaml:"location"`
}

type coordinateRecord struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// DefaultCatalog returns the catalog bundled with the binary
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalogFile reads and parses a catalog YAML file
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a catalog and checks it is self-consistent: ids are
// positive and unique, every disease symptom exists and specialist
// coordinates are in range.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	catalog := &Catalog{
		Symptoms: make([]*entities.Symptom, 0, len(file.Symptoms)),
		Diseases: make([]*entities.Disease, 0, len(file.Diseases)),
	}

	symptomIDs := make(map[int]struct{}, len(file.Symptoms))
	for _, rec := range file.Symptoms {
		if rec.ID <= 0 || rec.Name == "" {
			return nil, fmt.Errorf("symptom %d: id and name are required", rec.ID)
		}
		if _, dup := symptomIDs[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate symptom id %d", rec.ID)
		}
		symptomIDs[rec.ID] = struct{}{}
		catalog.Symptoms = append(catalog.Symptoms, &entities.Symptom{ID: rec.ID, Name: rec.Name})
	}

	diseaseIDs := make(map[int]struct{}, len(file.Diseases))
	for _, rec := range file.Diseases {
		if rec.ID <= 0 || rec.Name == "" {
			return nil, fmt.Errorf("disease %d: id and name are required", rec.ID)
		}
		if _, dup := diseaseIDs[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate disease id %d", rec.ID)
		}
		diseaseIDs[rec.ID] = struct{}{}

		for _, sid := range rec.Symptoms {
			if _, ok := symptomIDs[sid]; !ok {
				return nil, fmt.Errorf("disease %d (%s) references unknown symptom %d", rec.ID, rec.Name, sid)
			}
		}

		disease := &entities.Disease{
			ID:               rec.ID,
			Name:             rec.Name,
			Description:      rec.Description,
			Symptoms:         append([]int{}, rec.Symptoms...),
			Severity:         rec.Severity,
			RiskFactors:      rec.RiskFactors,
			CommonAgeGroups:  rec.CommonAgeGroups,
			TreatmentOptions: rec.TreatmentOptions,
		}
		for _, sp := range rec.Specialists {
			specialist := entities.Specialist{
				Name:        sp.Name,
				Description: sp.Description,
				Contact:     sp.Contact,
			}
			if sp.Location != nil {
				loc := entities.Coordinate{Latitude: sp.Location.Latitude, Longitude: sp.Location.Longitude}
				if !loc.Valid() {
					return nil, fmt.Errorf("disease %d specialist %q has coordinates out of range", rec.ID, sp.Name)
				}
				specialist.Location = &loc
			}
			disease.Specialists = append(disease.Specialists, specialist)
		}
		catalog.Diseases = append(catalog.Diseases, disease)
	}

	return catalog, nil
}
