// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Proficiency is the professional network's language proficiency enum.
type Proficiency string

// Proficiency levels as reported by the professional network.
const (
	ProficiencyElementary          Proficiency = "ELEMENTARY"
	ProficiencyLimitedWorking      Proficiency = "LIMITED_WORKING"
	ProficiencyProfessionalWorking Proficiency = "PROFESSIONAL_WORKING"
	ProficiencyFullProfessional    Proficiency = "FULL_PROFESSIONAL"
	ProficiencyNativeOrBilingual   Proficiency = "NATIVE_OR_BILINGUAL"
)

// Profile represents the subset of a professional-network profile used to build a resume
type Profile struct {
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	Headline        string        `json:"headline,omitempty"`
	Summary         string        `json:"summary,omitempty"`
	GeoLocationName string        `json:"geoLocationName,omitempty"`
	GeoCountryName  string        `json:"geoCountryName,omitempty"`
	EmailAddress    string        `json:"emailAddress,omitempty"`
	PhoneNumbers    []PhoneNumber `json:"phoneNumbers,omitempty"`
	Languages       []Language    `json:"languages,omitempty"`
	Education       []Education   `json:"education,omitempty"`
	Projects        []Project     `json:"projects,omitempty"`
}

// FullName joins first and last name with a single space
func (p *Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Address returns "location, country", dropping whichever part is missing
func (p *Profile) Address() string {
	parts := make([]string, 0, 2)
	if p.GeoLocationName != "" {
		parts = append(parts, p.GeoLocationName)
	}
	if p.GeoCountryName != "" {
		parts = append(parts, p.GeoCountryName)
	}
	return strings.Join(parts, ", ")
}

// PrimaryPhone returns the first listed phone number, or empty string
func (p *Profile) PrimaryPhone() string {
	if len(p.PhoneNumbers) == 0 {
		return ""
	}
	return p.PhoneNumbers[0].Number
}

// PhoneNumber is a contact phone entry
type PhoneNumber struct {
	Number string `json:"number"`
	Type   string `json:"type,omitempty"`
}

// Language is a spoken language with its proficiency level
type Language struct {
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency,omitempty"`
}

// Education is a single academic entry
type Education struct {
	DegreeName   string      `json:"degreeName,omitempty"`
	FieldOfStudy string      `json:"fieldOfStudy,omitempty"`
	SchoolName   string      `json:"schoolName,omitempty"`
	TimePeriod   *TimePeriod `json:"timePeriod,omitempty"`
	Grade        string      `json:"grade,omitempty"`
}

// StartYear returns the start year or 0 when unknown
func (e *Education) StartYear() int {
	if e.TimePeriod == nil || e.TimePeriod.StartDate == nil {
		return 0
	}
	return e.TimePeriod.StartDate.Year
}

// EndYear returns the end year or 0 when unknown
func (e *Education) EndYear() int {
	if e.TimePeriod == nil || e.TimePeriod.EndDate == nil {
		return 0
	}
	return e.TimePeriod.EndDate.Year
}

// TimePeriod is a start/end date range; either bound may be absent
type TimePeriod struct {
	StartDate *Date `json:"startDate,omitempty"`
	EndDate   *Date `json:"endDate,omitempty"`
}

// Date is a partial calendar date
type Date struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
}

// Project is a profile project; Description may end with an "@<link>" marker
type Project struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Skill is a single skill name from the profile skills list
type Skill struct {
	Name string `json:"name"`
}

// SkillNames extracts the names from a skills list, preserving order
func SkillNames(skills []Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

// ContactInfo is the separately fetched contact block of a profile
type ContactInfo struct {
	EmailAddress string        `json:"emailAddress,omitempty"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers,omitempty"`
}

// ApplyContact fills empty contact fields of the profile from info
func (p *Profile) ApplyContact(info *ContactInfo) {
	if info == nil {
		return
	}
	if p.EmailAddress == "" {
		p.EmailAddress = info.EmailAddress
	}
	if len(p.PhoneNumbers) == 0 {
		p.PhoneNumbers = info.PhoneNumbers
	}
}
