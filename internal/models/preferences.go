package models

import "strings"

// Condition is a medical condition selectable on the form.
type Condition string

const (
	ConditionDiabetes      Condition = "Diabetes"
	ConditionHeartProblems Condition = "Heart Problems"
	ConditionAsthma        Condition = "Asthma"
	ConditionCancer        Condition = "Cancer"
	ConditionHypertension  Condition = "Hypertension"
	ConditionObesity       Condition = "Obesity"
)

// Allergy is an allergy or intolerance selectable on the form.
type Allergy string

const (
	AllergyLactose   Allergy = "Lactose Intolerance"
	AllergyGluten    Allergy = "Gluten Intolerance"
	AllergyNut       Allergy = "Nut Allergy"
	AllergyShellfish Allergy = "Shellfish Allergy"
)

// DietType is the vegetarian preference.
type DietType string

const (
	DietVeg    DietType = "Veg"
	DietNonVeg DietType = "Non-Veg"
	DietBoth   DietType = "Both"
)

var conditions = foldedTable(map[Condition][]string{
	ConditionDiabetes:      {"Diabetes"},
	ConditionHeartProblems: {"Heart Problems", "Heart Problem", "heart"},
	ConditionAsthma:        {"Asthma"},
	ConditionCancer:        {"Cancer"},
	ConditionHypertension:  {"Hypertension"},
	ConditionObesity:       {"Obesity"},
})

var allergies = foldedTable(map[Allergy][]string{
	AllergyLactose:   {"Lactose Intolerance", "Lactose"},
	AllergyGluten:    {"Gluten Intolerance", "Gluten"},
	AllergyNut:       {"Nut Allergy", "Nut", "Nuts"},
	AllergyShellfish: {"Shellfish Allergy", "Shellfish"},
})

var dietTypes = foldedTable(map[DietType][]string{
	DietVeg:    {"Veg", "Vegetarian"},
	DietNonVeg: {"Non-Veg", "Non-Vegetarian", "Non Veg", "NonVeg"},
	DietBoth:   {"Both", "Any"},
})

// Conditions lists the selectable conditions in form order.
func Conditions() []Condition {
	return []Condition{
		ConditionDiabetes,
		ConditionHeartProblems,
		ConditionAsthma,
		ConditionCancer,
		ConditionHypertension,
		ConditionObesity,
	}
}

// Allergies lists the selectable allergies in form order.
func Allergies() []Allergy {
	return []Allergy{AllergyLactose, AllergyGluten, AllergyNut, AllergyShellfish}
}

// DietTypes lists the selectable diet preferences in form order.
func DietTypes() []DietType {
	return []DietType{DietVeg, DietNonVeg, DietBoth}
}

// ParseCondition resolves a label to its canonical Condition.
func ParseCondition(s string) (Condition, bool) {
	return lookup(conditions, s)
}

// ParseAllergy resolves a label to its canonical Allergy.
func ParseAllergy(s string) (Allergy, bool) {
	return lookup(allergies, s)
}

// ParseDietType resolves a label to its canonical DietType.
func ParseDietType(s string) (DietType, bool) {
	return lookup(dietTypes, s)
}

// HealthPreferences holds the dietary and health selections of a submission.
type HealthPreferences struct {
	Conditions []Condition `json:"conditions" form:"conditions" yaml:"conditions"`
	Allergies  []Allergy   `json:"allergies" form:"allergies" yaml:"allergies"`
	DietType   DietType    `json:"diet_type" form:"diet_type" yaml:"diet_type"`
	MealType   string      `json:"meal_type,omitempty" form:"meal_type" yaml:"meal_type,omitempty"`
}

// Validate returns a copy with canonical labels. Conditions and allergies
// outside the known vocabulary are kept as typed so the query builder can
// decide what to do with them; blanks are removed. An empty diet type means
// Both.
func (p HealthPreferences) Validate() (HealthPreferences, error) {
	out := HealthPreferences{MealType: strings.TrimSpace(p.MealType)}

	for _, c := range p.Conditions {
		label := strings.TrimSpace(string(c))
		if label == "" {
			continue
		}
		if canon, ok := ParseCondition(label); ok {
			out.Conditions = append(out.Conditions, canon)
			continue
		}
		out.Conditions = append(out.Conditions, Condition(label))
	}

	for _, a := range p.Allergies {
		label := strings.TrimSpace(string(a))
		if label == "" {
			continue
		}
		out.Allergies = append(out.Allergies, Allergy(label))
	}

	switch label := strings.TrimSpace(string(p.DietType)); label {
	case "":
		out.DietType = DietBoth
	default:
		d, ok := ParseDietType(label)
		if !ok {
			return p, NewValidationError("diet_type", "unknown diet preference %q", label)
		}
		out.DietType = d
	}

	return out, nil
}
