package advice

import (
	"fmt"
	"strings"
)

// Assessment is everything the dashboard shows for one set of measurements.
type Assessment struct {
	BMI         float64  `json:"bmi" example:"22.9"`
	Category    Category `json:"category" example:"Normal weight"`
	WaterLiters float64  `json:"water_liters" example:"2.5"`
	Bundle      Bundle   `json:"advice"`
}

// Engine evaluates measurements against a catalog.
type Engine struct {
	catalog *Catalog
}

// NewEngine uses c, or the embedded catalog when c is nil.
func NewEngine(c *Catalog) *Engine {
	if c == nil {
		c = defaultCatalog
	}
	return &Engine{catalog: c}
}

// Recommend returns the bundle for cat from the engine's catalog.
func (e *Engine) Recommend(cat Category) Bundle {
	b, _ := e.catalog.Bundle(cat)
	return b
}

// Assess computes BMI, category, water target and advice. Height must be
// positive.
func (e *Engine) Assess(weightKG, heightCM float64) Assessment {
	bmi := ComputeBMI(weightKG, heightCM)
	cat := Categorize(bmi)
	return Assessment{
		BMI:         bmi,
		Category:    cat,
		WaterLiters: WaterTarget(weightKG),
		Bundle:      e.Recommend(cat),
	}
}

// Section is one page of the dashboard selector.
type Section string

const (
	SectionBMIReport Section = "BMI Report"
	SectionDiet      Section = "Diet Recommendation"
	SectionExercise  Section = "Exercise Recommendation"
	SectionWater     Section = "Water Intake"
	SectionTips      Section = "Health Tips"
)

// Sections lists the selector entries in display order.
var Sections = []Section{SectionBMIReport, SectionDiet, SectionExercise, SectionWater, SectionTips}

// ParseSection matches a section by its title or by a short slug
// ("bmi", "diet", "exercise", "water", "tips"). Empty input selects the BMI report.
func ParseSection(s string) (Section, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SectionBMIReport, nil
	}
	for _, sec := range Sections {
		if strings.EqualFold(string(sec), s) || strings.EqualFold(sec.Slug(), s) {
			return sec, nil
		}
	}
	return "", fmt.Errorf("unknown dashboard section %q", s)
}

// Slug is the short URL form of the section.
func (s Section) Slug() string {
	switch s {
	case SectionBMIReport:
		return "bmi"
	case SectionDiet:
		return "diet"
	case SectionExercise:
		return "exercise"
	case SectionWater:
		return "water"
	case SectionTips:
		return "tips"
	}
	return ""
}

// Lines renders one section of a as display lines.
func (a Assessment) Lines(s Section) []string {
	switch s {
	case SectionBMIReport:
		return []string{fmt.Sprintf("BMI: %.1f (%s)", a.BMI, a.Category)}
	case SectionDiet:
		return cloneLines(a.Bundle.Diet)
	case SectionExercise:
		return cloneLines(a.Bundle.Exercise)
	case SectionWater:
		lines := []string{fmt.Sprintf("Suggested: %.1f L/day", a.WaterLiters)}
		return append(lines, a.Bundle.Hydration...)
	case SectionTips:
		return cloneLines(a.Bundle.Tips)
	}
	return []string{}
}
