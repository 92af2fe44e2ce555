// Package steps provides step definitions, dependency validation and progress
// tracking for the resume build pipeline.
package steps

import (
	"fmt"
	"sort"
	"strings"
)

// Step categories
const (
	CategoryFetch  = "fetch"
	CategoryEnrich = "enrich"
	CategoryRender = "render"
)

// Step names in execution order
const (
	Authenticate   = "authenticate"
	FetchProfile   = "fetch_profile"
	FetchSkills    = "fetch_skills"
	LanguageStats  = "language_stats"
	DescribeSkills = "describe_skills"
	LoadSnapshot   = "load_snapshot"
	FormatSections = "format_sections"
	SaveSnapshot   = "save_snapshot"
	RenderPDF      = "render_pdf"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Label        string
	Category     string
	Dependencies []string
	// Optional dependencies are only checked when they ran
	Optional []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	Authenticate: {
		Name:     Authenticate,
		Label:    "Signing in to LinkedIn",
		Category: CategoryFetch,
	},
	FetchProfile: {
		Name:         FetchProfile,
		Label:        "Fetching profile and contact info",
		Category:     CategoryFetch,
		Dependencies: []string{Authenticate},
	},
	FetchSkills: {
		Name:         FetchSkills,
		Label:        "Fetching skills",
		Category:     CategoryFetch,
		Dependencies: []string{Authenticate},
	},
	LanguageStats: {
		Name:     LanguageStats,
		Label:    "Aggregating GitHub languages",
		Category: CategoryFetch,
	},
	DescribeSkills: {
		Name:         DescribeSkills,
		Label:        "Describing skills",
		Category:     CategoryEnrich,
		Dependencies: []string{FetchSkills},
	},
	LoadSnapshot: {
		Name:     LoadSnapshot,
		Label:    "Loading snapshot",
		Category: CategoryFetch,
	},
	FormatSections: {
		Name:     FormatSections,
		Label:    "Formatting sections",
		Category: CategoryRender,
		Optional: []string{FetchProfile, DescribeSkills},
	},
	SaveSnapshot: {
		Name:         SaveSnapshot,
		Label:        "Saving snapshot",
		Category:     CategoryRender,
		Dependencies: []string{FetchProfile, DescribeSkills},
		Optional:     []string{LanguageStats},
	},
	RenderPDF: {
		Name:         RenderPDF,
		Label:        "Rendering PDF",
		Category:     CategoryRender,
		Dependencies: []string{FormatSections},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s has missing dependencies: %s", e.Step, strings.Join(e.MissingDependencies, ", "))
}

// ValidateDependencies checks that every required dependency of a step has completed
func ValidateDependencies(completed map[string]bool, stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &DependencyError{Step: stepName, MissingDependencies: missing}
	}
	return nil
}

// Tracker numbers steps as they start and enforces dependency order.
type Tracker struct {
	plan      []string
	completed map[string]bool
	current   string
}

// NewTracker creates a tracker for the given ordered plan. Every step must be registered.
func NewTracker(plan ...string) (*Tracker, error) {
	for _, name := range plan {
		if _, ok := StepRegistry[name]; !ok {
			return nil, fmt.Errorf("unknown step: %s", name)
		}
	}
	return &Tracker{plan: plan, completed: map[string]bool{}}, nil
}

// Start marks the previous step complete, validates dependencies of name and
// returns its progress line, e.g. "Step 2/7: Fetching skills...".
func (t *Tracker) Start(name string) (string, error) {
	if t.current != "" {
		t.completed[t.current] = true
	}

	index := -1
	for i, step := range t.plan {
		if step == name {
			index = i
			break
		}
	}
	if index < 0 {
		return "", fmt.Errorf("step %s is not part of this run", name)
	}
	if err := ValidateDependencies(t.completed, name); err != nil {
		return "", err
	}

	t.current = name
	return fmt.Sprintf("Step %d/%d: %s...", index+1, len(t.plan), StepRegistry[name].Label), nil
}

// Finish marks the current step complete
func (t *Tracker) Finish() {
	if t.current != "" {
		t.completed[t.current] = true
		t.current = ""
	}
}

// Completed reports whether a step has finished
func (t *Tracker) Completed(name string) bool {
	return t.completed[name]
}
