package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProfileView = `{
	"profile": {
		"firstName": "Ada",
		"lastName": "Lovelace",
		"headline": "Analyst",
		"summary": "First **programmer**.",
		"geoLocationName": "London",
		"geoCountryName": "United Kingdom"
	},
	"educationView": {"elements": [{
		"degreeName": "B.E.",
		"fieldOfStudy": "CS",
		"schoolName": "X College",
		"grade": "85%",
		"timePeriod": {"startDate": {"year": 2018}, "endDate": {"year": 2022}}
	}]},
	"languageView": {"elements": [{"name": "English", "proficiency": "NATIVE_OR_BILINGUAL"}]},
	"projectView": {"elements": [{"title": "Engine", "description": "Analytical engine @github.com/ada/engine"}]}
}`

const testSkillsReply = `{"skills": [{"lang": "Go", "line": "Concurrent services"}, {"lang": "Python", "line": "Data tooling"}]}`

// fakeServices serves the LinkedIn, GitHub and chat completion APIs from one
// server. GitHub lives under /github/ and completions under /v1/.
func fakeServices(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/uas/authenticate", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "ajax:7", Path: "/"})
			return
		}
		_, _ = w.Write([]byte(`{"login_result": "PASS"}`))
	})
	mux.HandleFunc("/voyager/api/identity/profiles/ada/profileView", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(testProfileView))
	})
	mux.HandleFunc("/voyager/api/identity/profiles/ada/profileContactInfo", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"emailAddress": "ada@example.com", "phoneNumbers": [{"number": "+44 20 7946 0000"}]}`))
	})
	mux.HandleFunc("/voyager/api/identity/profiles/ada/skills", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"elements": [{"name": "Python"}, {"name": "Go"}]}`))
	})

	mux.HandleFunc("/github/user/repos", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"name": "engine", "owner": {"login": "ada"}}]`))
	})
	mux.HandleFunc("/github/repos/ada/engine/languages", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"Go": 3000, "Python": 1000}`))
	})

	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gsk_key", r.Header.Get("Authorization"))
		content, _ := json.Marshal(testSkillsReply)
		_, _ = fmt.Fprintf(w, `{"id": "1", "object": "chat.completion", "choices": [{"index": 0, "message": {"role": "assistant", "content": %s}, "finish_reason": "stop"}]}`, content)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// fileRenderer writes the HTML document where the PDF would go
type fileRenderer struct {
	documents []string
}

func (f *fileRenderer) Render(_ context.Context, document, outPath string) error {
	f.documents = append(f.documents, document)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(document), 0o644)
}

func testEnv() map[string]string {
	return map[string]string{
		config.EnvLinkedInEmail:    "ada@example.com",
		config.EnvLinkedInPassword: "secret",
		config.EnvGitHubToken:      "ghp_token",
		config.EnvGroqAPIKey:       "gsk_key",
		"RESUME_LINKEDIN_PROFILE":  "ada",
	}
}

// testApp builds an app wired to server with a recording renderer
func testApp(t *testing.T, server *httptest.Server, env map[string]string) (*app, *fileRenderer, *bytes.Buffer) {
	t.Helper()
	renderer := &fileRenderer{}
	stdout := &bytes.Buffer{}

	a := newApp()
	a.env = config.MapEnv(env)
	a.stdout = stdout
	a.stderr = &bytes.Buffer{}
	a.newRenderer = func(*golog.Logger) pipeline.Renderer { return renderer }
	if server != nil {
		a.linkedinBaseURL = server.URL
		a.githubBaseURL = server.URL + "/github/"
		a.llmBaseURL = server.URL + "/v1"
	}
	return a, renderer, stdout
}

func execute(t *testing.T, a *app, args ...string) error {
	t.Helper()
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
