package rendering

import (
	"fmt"
	"html/template"
	"net/url"
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/linkedin"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/kataras/golog"
	"github.com/microcosm-cc/bluemonday"
)

// FluentLabel is the display label for every kept language proficiency
const FluentLabel = "Fluent"

// projectLinkPattern captures a trailing "@<token>" marker
var projectLinkPattern = regexp.MustCompile(`@([\p{L}\p{N}_./-]+)$`)

type headerData struct {
	Name         string
	ProfileImage string
	CollegeLogo  string
}

// FormatHeader renders the name heading with the optional profile image and college logo.
func FormatHeader(profile *types.Profile, settings *config.Settings) (template.HTML, error) {
	return execute("header", headerData{
		Name:         profile.FullName(),
		ProfileImage: settings.ProfileImage,
		CollegeLogo:  settings.CollegeLogo,
	})
}

type contactItem struct {
	Label string
	Text  string
	Href  string
}

type contactData struct {
	Address string
	Items   []contactItem
}

// FormatContact renders address, phone and links. Settings override the
// profile's own email and phone.
func FormatContact(profile *types.Profile, settings *config.Settings) (template.HTML, error) {
	data := contactData{Address: profile.Address()}

	phone := settings.Phone
	if phone == "" {
		phone = profile.PrimaryPhone()
	}
	if phone != "" {
		data.Items = append(data.Items, contactItem{Label: "Mobile", Text: phone})
	}

	if handle := settings.LinkedInProfile; handle != "" {
		data.Items = append(data.Items, contactItem{
			Label: "LinkedIn",
			Text:  "@" + handle,
			Href:  linkedin.ProfileURL(handle),
		})
	}

	email := settings.Email
	if email == "" {
		email = profile.EmailAddress
	}
	if email != "" {
		data.Items = append(data.Items, contactItem{Label: "Email", Text: email, Href: "mailto:" + email})
	}

	if settings.GitHubURL != "" {
		data.Items = append(data.Items, contactItem{
			Label: "Github",
			Text:  "@" + lastPathSegment(settings.GitHubURL),
			Href:  settings.GitHubURL,
		})
	}

	if settings.Website != "" {
		data.Items = append(data.Items, contactItem{
			Label: "Portfolio Website",
			Text:  websiteLabel(settings.Website),
			Href:  settings.Website,
		})
	}

	return execute("contact", data)
}

func lastPathSegment(rawURL string) string {
	trimmed := strings.TrimRight(rawURL, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

func websiteLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host + strings.TrimRight(u.Path, "/")
}

// FormatSummary renders the free-text summary as sanitized markdown.
func FormatSummary(profile *types.Profile) (template.HTML, error) {
	return execute("summary", MarkdownToHTML(profile.Summary))
}

// MarkdownToHTML converts markdown to HTML and strips anything unsafe.
func MarkdownToHTML(md string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(strings.TrimSpace(md)))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	out := markdown.Render(doc, renderer)

	// #nosec G203 -- sanitized by bluemonday
	return template.HTML(bluemonday.UGCPolicy().SanitizeBytes(out))
}

// EducationLine is one rendered academic entry
type EducationLine struct {
	Title  string
	Detail string
}

// Text returns the line as it reads on the page
func (l EducationLine) Text() string {
	return l.Title + ", " + l.Detail
}

// FormatEducationEntry builds the line for one entry. Entries without a
// degree name are skipped (ok is false).
func FormatEducationEntry(e types.Education) (line EducationLine, ok bool) {
	if e.DegreeName == "" {
		return EducationLine{}, false
	}

	title := e.DegreeName
	if e.FieldOfStudy != "" {
		title += fmt.Sprintf(" (%s)", e.FieldOfStudy)
	}

	detail := e.SchoolName
	start, end := e.StartYear(), e.EndYear()
	switch {
	case start != 0 && end != 0:
		detail += fmt.Sprintf(" (%d - %d)", start, end)
	case end != 0:
		detail += fmt.Sprintf(" (%d)", end)
	}
	detail = strings.TrimSpace(detail)

	if e.Grade != "" {
		detail += ": " + FormatGrade(e.Grade)
	}

	return EducationLine{Title: title, Detail: detail}, true
}

// FormatGrade annotates percentage grades with "(CGPA)"
func FormatGrade(grade string) string {
	if strings.HasSuffix(grade, "%") {
		return grade + " (CGPA)"
	}
	return grade
}

// FormatEducation renders the academic qualification section.
func FormatEducation(education []types.Education) (template.HTML, error) {
	lines := make([]EducationLine, 0, len(education))
	for _, e := range education {
		if line, ok := FormatEducationEntry(e); ok {
			lines = append(lines, line)
		}
	}
	return execute("academic", lines)
}

type languageLine struct {
	Name  string
	Label string
}

// ProficiencyLabel maps a proficiency to its display label. Only native or
// full professional proficiency is shown.
func ProficiencyLabel(p types.Proficiency) (string, bool) {
	switch p {
	case types.ProficiencyNativeOrBilingual, types.ProficiencyFullProfessional:
		return FluentLabel, true
	default:
		return "", false
	}
}

// FormatLanguages renders the language proficiency section.
func FormatLanguages(languages []types.Language) (template.HTML, error) {
	lines := make([]languageLine, 0, len(languages))
	for _, l := range languages {
		if label, ok := ProficiencyLabel(l.Proficiency); ok {
			lines = append(lines, languageLine{Name: l.Name, Label: label})
		}
	}
	return execute("languages", lines)
}

// FormatSkills renders skill names as one comma-joined paragraph, in the given order.
func FormatSkills(descriptions []types.SkillDescription) (template.HTML, error) {
	names := make([]string, 0, len(descriptions))
	for _, d := range descriptions {
		names = append(names, d.Name)
	}
	return execute("skills", strings.Join(names, ", "))
}

// ExtractProjectLink returns the token of a trailing "@<token>" marker.
// A description without a marker is not an error; ok is false.
func ExtractProjectLink(description string) (token string, ok bool) {
	m := projectLinkPattern.FindStringSubmatch(description)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// LinkProjectDescription escapes a description and turns a trailing
// "@github.com/..." marker into a link labelled "github". Other markers are
// logged and left as text.
func LinkProjectDescription(description string, logger *golog.Logger) template.HTML {
	token, ok := ExtractProjectLink(description)
	if !ok {
		return template.HTML(template.HTMLEscapeString(description))
	}

	if !strings.HasPrefix(token, "github.com") {
		if logger != nil {
			logger.Warnf("project link extraction failure: %q", description)
		}
		return template.HTML(template.HTMLEscapeString(description))
	}

	prefix := strings.TrimSuffix(description, "@"+token)
	href := template.HTMLEscapeString("https://" + token)
	return template.HTML(template.HTMLEscapeString(prefix) +
		fmt.Sprintf(`<a href="%s" target="_blank">github</a>`, href))
}

type projectLine struct {
	Title       string
	Description template.HTML
}

// FormatProjects renders the projects section as "title - description" items.
func FormatProjects(projects []types.Project, logger *golog.Logger) (template.HTML, error) {
	lines := make([]projectLine, 0, len(projects))
	for _, p := range projects {
		lines = append(lines, projectLine{
			Title:       p.Title,
			Description: LinkProjectDescription(strings.TrimSpace(p.Description), logger),
		})
	}
	return execute("projects", lines)
}
