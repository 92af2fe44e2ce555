package rendering

import (
	"html/template"
	"strings"
)

const sectionTemplates = `
{{define "header"}}<div class="header" style="display: flex; align-items: center; margin-bottom: 20px">
{{- if .ProfileImage}}
  <img src="{{.ProfileImage}}" alt="Profile Picture" style="height: 100px; border-radius: 2%; margin-right: 20px" />
{{- end}}
  <h1 style="margin: 0; text-align: center; flex: 2">{{.Name}}</h1>
{{- if .CollegeLogo}}
  <img src="{{.CollegeLogo}}" alt="College Logo" style="height: 90px; border-radius: 2%; margin-right: 15px" />
{{- end}}
</div>{{end}}

{{define "contact"}}<div class="contact">
{{- if .Address}}
  {{.Address}} <br/>
{{- end}}
{{- range $i, $item := .Items}}
  {{if $i}}| {{end}}{{$item.Label}}: {{if $item.Href}}<a href="{{$item.Href}}" target="_blank">{{$item.Text}}</a>{{else}}{{$item.Text}}{{end}}
{{- end}}
</div>{{end}}

{{define "summary"}}<div class="section">
  <h2>Profile Summary</h2>
  {{.}}
</div>{{end}}

{{define "academic"}}<div class="section">
  <h2>Academic Qualification</h2>
  <ul>
{{- range .}}
    <li><span class="title">{{.Title}}, </span>{{.Detail}}</li>
{{- end}}
  </ul>
</div>{{end}}

{{define "languages"}}<div class="section">
  <h2>Language Proficiency</h2>
  <ul>
{{- range .}}
    <li>{{.Name}} ({{.Label}})</li>
{{- end}}
  </ul>
</div>{{end}}

{{define "skills"}}<div class="section">
  <h2>Skills</h2>
  <p class="skills">{{.}}</p>
</div>{{end}}

{{define "projects"}}<div class="section">
  <h2>Projects</h2>
  <ul>
{{- range .}}
    <li>{{.Title}} - {{.Description}}</li>
{{- end}}
  </ul>
</div>{{end}}

{{define "document"}}<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Name}} - Resume</title>
    <link rel="stylesheet" type="text/css" href="{{.Stylesheet}}">
  </head>
  <body>
    <page size="A4">
      {{.Sections.Header}}
      {{.Sections.Contact}}
      {{.Sections.Summary}}
      {{.Sections.Academic}}
      {{.Sections.Languages}}
      {{.Sections.Skills}}
      {{.Sections.Projects}}
    </page>
  </body>
</html>
{{end}}
`

var templates = template.Must(template.New("resume").Parse(sectionTemplates))

// execute runs a named template and returns its output as trusted HTML
func execute(name string, data any) (template.HTML, error) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", &TemplateError{Message: "failed to execute " + name, Cause: err}
	}
	return template.HTML(sb.String()), nil
}
