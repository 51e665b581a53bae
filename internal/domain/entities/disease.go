package entities

// Specialist is a practitioner recommended for a disease. Distance is only
// populated on ranking copies and is never stored.
type Specialist struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Contact     string      `json:"contact"`
	Location    *Coordinate `json:"location,omitempty"`
	Distance    *float64    `json:"distance,omitempty"`
}

// Disease represents a condition in the reference catalog
type Disease struct {
	ID               int          `json:"id" db:"id"`
	Name             string       `json:"name" db:"name"`
	Description      string       `json:"description" db:"description"`
	Symptoms         []int        `json:"symptoms" db:"-"`
	Severity         string       `json:"severity,omitempty" db:"severity"`
	RiskFactors      []string     `json:"risk_factors,omitempty" db:"-"`
	CommonAgeGroups  []string     `json:"common_age_groups,omitempty" db:"-"`
	TreatmentOptions []string     `json:"treatment_options,omitempty" db:"-"`
	Specialists      []Specialist `json:"specialists,omitempty" db:"-"`
}

// Clone returns a deep copy of the disease so callers can annotate it
// without touching catalog-owned slices.
func (d *Disease) Clone() *Disease {
	if d == nil {
		return nil
	}

	c := *d
	c.Symptoms = append([]int(nil), d.Symptoms...)
	c.RiskFactors = cloneStrings(d.RiskFactors)
	c.CommonAgeGroups = cloneStrings(d.CommonAgeGroups)
	c.TreatmentOptions = cloneStrings(d.TreatmentOptions)

	if d.Specialists != nil {
		c.Specialists = make([]Specialist, len(d.Specialists))
		for i, s := range d.Specialists {
			c.Specialists[i] = s.Clone()
		}
	}

	return &c
}

// Clone returns a copy of the specialist with its own Location and Distance
func (s Specialist) Clone() Specialist {
	c := s
	if s.Location != nil {
		loc := *s.Location
		c.Location = &loc
	}
	if s.Distance != nil {
		d := *s.Distance
		c.Distance = &d
	}
	return c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
