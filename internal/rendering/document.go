package rendering

import (
	"html/template"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/kataras/golog"
)

// Sections holds the rendered fragments in document order
type Sections struct {
	Header    template.HTML
	Contact   template.HTML
	Summary   template.HTML
	Academic  template.HTML
	Languages template.HTML
	Skills    template.HTML
	Projects  template.HTML
}

// BuildSections runs every formatter over the profile and generated skill descriptions.
func BuildSections(profile *types.Profile, skills []types.SkillDescription, settings *config.Settings, logger *golog.Logger) (*Sections, error) {
	var (
		s   Sections
		err error
	)

	if s.Header, err = FormatHeader(profile, settings); err != nil {
		return nil, err
	}
	if s.Contact, err = FormatContact(profile, settings); err != nil {
		return nil, err
	}
	if s.Summary, err = FormatSummary(profile); err != nil {
		return nil, err
	}
	if s.Academic, err = FormatEducation(profile.Education); err != nil {
		return nil, err
	}
	if s.Languages, err = FormatLanguages(profile.Languages); err != nil {
		return nil, err
	}
	if s.Skills, err = FormatSkills(skills); err != nil {
		return nil, err
	}
	if s.Projects, err = FormatProjects(profile.Projects, logger); err != nil {
		return nil, err
	}

	return &s, nil
}

type documentData struct {
	Name       string
	Stylesheet string
	Sections   *Sections
}

// AssembleDocument joins the sections into a complete HTML page that links
// the stylesheet by its path relative to the working directory.
func AssembleDocument(name, stylesheet string, sections *Sections) (string, error) {
	out, err := execute("document", documentData{
		Name:       name,
		Stylesheet: stylesheet,
		Sections:   sections,
	})
	return string(out), err
}
