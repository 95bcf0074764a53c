// Package entity contains the core business objects of the diet engine,
// each representing a unique concept the generators reason about.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Gender is the biological sex used by the energy-expenditure estimate.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = ""
)

// ActivityLevel is the coarse physical activity class of a person.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// AdultAge is the age from which growth-phase ratios no longer apply.
const AdultAge = 18

// HealthProfile holds the health attributes that drive calorie and constraint computation.
// It is an immutable input to a single generation run.
type HealthProfile struct {
	Age              int           `json:"age"`
	Gender           Gender        `json:"gender"`
	HeightCm         float64       `json:"height_cm"`
	WeightKg         float64       `json:"weight_kg"`
	ActivityLevel    ActivityLevel `json:"activity_level"`
	Diseases         []string      `json:"diseases"`
	Allergies        []string      `json:"allergies"`
	DailyCalorieGoal *float64      `json:"daily_calorie_goal,omitempty"` // Explicit goal; overrides the estimate when positive.
}

// IsMinor reports whether the profile belongs to someone still growing.
func (p HealthProfile) IsMinor() bool {
	return p.Age < AdultAge
}

// FamilyMember is a household member whose plan is generated alongside the primary user.
type FamilyMember struct {
	ID                   uuid.UUID     `json:"id"`
	Relationship         string        `json:"relationship"`
	BirthDate            time.Time     `json:"birth_date"`
	Profile              HealthProfile `json:"profile"`
	IncludeInUnifiedDiet *bool         `json:"include_in_unified_diet,omitempty"` // nil means included.
}

// IncludedInUnifiedDiet reports whether the member counts toward the shared family plan.
func (m FamilyMember) IncludedInUnifiedDiet() bool {
	return m.IncludeInUnifiedDiet == nil || *m.IncludeInUnifiedDiet
}

// AgeOn derives the member's age in whole years on the given date.
func (m FamilyMember) AgeOn(date time.Time) int {
	if m.BirthDate.IsZero() {
		return m.Profile.Age
	}

	age := date.Year() - m.BirthDate.Year()
	if date.Month() < m.BirthDate.Month() ||
		(date.Month() == m.BirthDate.Month() && date.Day() < m.BirthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}

	return age
}

// ProfileOn returns the member's profile with the age derived for the given date.
func (m FamilyMember) ProfileOn(date time.Time) HealthProfile {
	p := m.Profile
	p.Age = m.AgeOn(date)
	p.Diseases = slices.Clone(m.Profile.Diseases)
	p.Allergies = slices.Clone(m.Profile.Allergies)

	return p
}
