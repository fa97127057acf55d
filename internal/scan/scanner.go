// Package scan detects a project's technology stack from marker files.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/configo-dev/configo/pkg/models"
)

// marker ties a well-known file to the language and framework it implies.
type marker struct {
	file      string
	language  string
	framework string
}

var markers = []marker{
	{file: "requirements.txt", language: "Python"},
	{file: "pyproject.toml", language: "Python"},
	{file: "Pipfile", language: "Python"},
	{file: "package.json", language: "JavaScript", framework: "Node.js"},
	{file: "tsconfig.json", language: "TypeScript"},
	{file: "go.mod", language: "Go"},
	{file: "Cargo.toml", language: "Rust"},
	{file: "pom.xml", language: "Java", framework: "Maven"},
	{file: "build.gradle", language: "Java", framework: "Gradle"},
	{file: "Gemfile", language: "Ruby"},
	{file: "composer.json", language: "PHP"},
	{file: "mix.exs", language: "Elixir"},
	{file: "Dockerfile", framework: "Docker"},
	{file: "docker-compose.yml", framework: "Docker Compose"},
	{file: "Makefile", framework: "Make"},
}

// Scanner detects languages and frameworks in a project directory.
// It satisfies the backend.ProjectScanner capability.
type Scanner struct{}

// New creates a Scanner.
func New() *Scanner {
	return &Scanner{}
}

// Scan inspects the top level of path for marker files.
func (s *Scanner) Scan(path string) (*models.ProjectInfo, error) {
	if path == "" {
		path = "."
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}

	present := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			present[entry.Name()] = true
		}
	}

	info := &models.ProjectInfo{
		Path:        path,
		Languages:   []string{},
		Frameworks:  []string{},
		MarkerFiles: []string{},
	}

	languages := map[string]bool{}
	frameworks := map[string]bool{}
	for _, m := range markers {
		if !present[m.file] {
			continue
		}
		info.MarkerFiles = append(info.MarkerFiles, filepath.Join(path, m.file))
		if m.language != "" {
			languages[m.language] = true
		}
		if m.framework != "" {
			frameworks[m.framework] = true
		}
	}

	info.Languages = sortedKeys(languages)
	info.Frameworks = sortedKeys(frameworks)
	return info, nil
}

// Available reports that this is a real implementation.
func (s *Scanner) Available() bool { return true }

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
