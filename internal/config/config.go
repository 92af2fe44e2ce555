// Package config resolves CLI flags, environment variables and an optional
// config file into a single immutable Settings value.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/jonathan/resume-builder/internal/llm"
)

// Flag names, shared by the CLI and Resolve.
const (
	FlagOutputDir       = "output-dir"
	FlagProfileImage    = "profile-image"
	FlagCollegeLogo     = "college-logo"
	FlagLinkedInProfile = "linkedin-profile"
	FlagEmail           = "email"
	FlagPhone           = "phone"
	FlagGitHubURL       = "github-url"
	FlagWebsite         = "website"
	FlagStylesheet      = "stylesheet"
	FlagLLMProvider     = "llm-provider"
	FlagLLMModel        = "llm-model"
	FlagDebug           = "debug"
)

// Defaults for settings that have one.
const (
	DefaultOutputDir  = "./build"
	DefaultStylesheet = "resume.css"
	OutputFilename    = "resume.pdf"
)

// Env looks up an environment variable. os.LookupEnv satisfies it.
type Env func(key string) (string, bool)

// OSEnv reads the process environment
var OSEnv Env = os.LookupEnv

// MapEnv returns an Env backed by a map. Empty values count as unset.
func MapEnv(m map[string]string) Env {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok && v != ""
	}
}

// Settings is the resolved, read-only configuration for one run
type Settings struct {
	OutputDir       string       `validate:"required"`
	ProfileImage    string
	CollegeLogo     string
	LinkedInProfile string
	Email           string       `validate:"omitempty,email"`
	Phone           string
	GitHubURL       string       `validate:"omitempty,url"`
	Website         string       `validate:"omitempty,url"`
	Stylesheet      string       `validate:"required"`
	LLMProvider     llm.Provider `validate:"oneof=groq gemini"`
	LLMModel        string
	Debug           bool
}

// OutputPath is where the rendered PDF is written
func (s *Settings) OutputPath() string {
	return filepath.Join(s.OutputDir, OutputFilename)
}

// FileConfig is the on-disk config shape. All fields are optional.
type FileConfig struct {
	OutputDir       string `json:"output_dir,omitempty" yaml:"output_dir"`
	ProfileImage    string `json:"profile_image,omitempty" yaml:"profile_image"`
	CollegeLogo     string `json:"college_logo,omitempty" yaml:"college_logo"`
	LinkedInProfile string `json:"linkedin_profile,omitempty" yaml:"linkedin_profile"`
	Email           string `json:"email,omitempty" yaml:"email"`
	Phone           string `json:"phone,omitempty" yaml:"phone"`
	GitHubURL       string `json:"github_url,omitempty" yaml:"github_url"`
	Website         string `json:"website,omitempty" yaml:"website"`
	Stylesheet      string `json:"stylesheet,omitempty" yaml:"stylesheet"`
	LLMProvider     string `json:"llm_provider,omitempty" yaml:"llm_provider"`
	LLMModel        string `json:"llm_model,omitempty" yaml:"llm_model"`
	Debug           bool   `json:"debug,omitempty" yaml:"debug"`
}

// LoadFile loads configuration from a JSON or YAML file, chosen by extension.
func LoadFile(path string) (*FileConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// setting describes where one string setting can come from
type setting struct {
	flag  string
	env   string
	file  func(*FileConfig) string
	def   string
	apply func(*Settings, string)
}

var settingsTable = []setting{
	{FlagOutputDir, "RESUME_OUTPUT_DIR", func(f *FileConfig) string { return f.OutputDir }, DefaultOutputDir,
		func(s *Settings, v string) { s.OutputDir = v }},
	{FlagProfileImage, "RESUME_PROFILE_IMAGE_PATH", func(f *FileConfig) string { return f.ProfileImage }, "",
		func(s *Settings, v string) { s.ProfileImage = v }},
	{FlagCollegeLogo, "RESUME_COLLEGE_LOGO_PATH", func(f *FileConfig) string { return f.CollegeLogo }, "",
		func(s *Settings, v string) { s.CollegeLogo = v }},
	{FlagLinkedInProfile, "RESUME_LINKEDIN_PROFILE", func(f *FileConfig) string { return f.LinkedInProfile }, "",
		func(s *Settings, v string) { s.LinkedInProfile = v }},
	{FlagEmail, "RESUME_EMAIL", func(f *FileConfig) string { return f.Email }, "",
		func(s *Settings, v string) { s.Email = v }},
	{FlagPhone, "RESUME_PHONENO", func(f *FileConfig) string { return f.Phone }, "",
		func(s *Settings, v string) { s.Phone = v }},
	{FlagGitHubURL, "RESUME_GITHUB_URL", func(f *FileConfig) string { return f.GitHubURL }, "",
		func(s *Settings, v string) { s.GitHubURL = v }},
	{FlagWebsite, "RESUME_WEBSITE_URL", func(f *FileConfig) string { return f.Website }, "",
		func(s *Settings, v string) { s.Website = v }},
	{FlagStylesheet, "RESUME_STYLESHEET", func(f *FileConfig) string { return f.Stylesheet }, DefaultStylesheet,
		func(s *Settings, v string) { s.Stylesheet = v }},
	{FlagLLMProvider, "RESUME_LLM_PROVIDER", func(f *FileConfig) string { return f.LLMProvider }, string(llm.ProviderGroq),
		func(s *Settings, v string) { s.LLMProvider = llm.Provider(strings.ToLower(v)) }},
	{FlagLLMModel, "RESUME_LLM_MODEL", func(f *FileConfig) string { return f.LLMModel }, "",
		func(s *Settings, v string) { s.LLMModel = v }},
}

// Resolve merges explicitly set flags, the environment and an optional config
// file into Settings. Precedence per setting: explicit flag > environment >
// config file > default. explicit holds only flags the user actually set.
func Resolve(explicit map[string]string, env Env, file *FileConfig) (*Settings, error) {
	if env == nil {
		env = OSEnv
	}
	if file == nil {
		file = &FileConfig{}
	}

	s := &Settings{}
	for _, st := range settingsTable {
		value := st.def
		if v := st.file(file); v != "" {
			value = v
		}
		if v, ok := env(st.env); ok && v != "" {
			value = v
		}
		if v, ok := explicit[st.flag]; ok {
			value = v
		}
		st.apply(s, value)
	}

	debug := file.Debug
	if v, ok := env("RESUME_DEBUG"); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, &ConfigError{Message: "RESUME_DEBUG must be a boolean", Cause: err}
		}
		debug = parsed
	}
	if v, ok := explicit[FlagDebug]; ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, &ConfigError{Message: "--debug must be a boolean", Cause: err}
		}
		debug = parsed
	}
	s.Debug = debug

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks value shapes (email, URLs, provider name).
func (s *Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ConfigError{Message: "invalid settings", Cause: err}
	}

	invalid := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		invalid = append(invalid, fmt.Sprintf("%s (%s)", settingFlag(fe.StructField()), fe.Tag()))
	}
	return &ConfigError{Message: "invalid settings", Missing: invalid}
}

// settingFlag maps a Settings field name back to its CLI flag
func settingFlag(field string) string {
	switch field {
	case "OutputDir":
		return "--" + FlagOutputDir
	case "Email":
		return "--" + FlagEmail
	case "GitHubURL":
		return "--" + FlagGitHubURL
	case "Website":
		return "--" + FlagWebsite
	case "Stylesheet":
		return "--" + FlagStylesheet
	case "LLMProvider":
		return "--" + FlagLLMProvider
	default:
		return field
	}
}

var validate = validator.New()
