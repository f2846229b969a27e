// Package git downloads single folders of remote repositories through a sparse checkout driven by the git executable.
package git

import (
	"fmt"
	"strings"
)

// Source is a git hosting mirror serving the template repository.
type Source string

const (
	Gitee  Source = "gitee"
	GitHub Source = "github"
)

// Sources lists the supported mirrors in prompt order.
func Sources() []Source {
	return []Source{Gitee, GitHub}
}

// Title is the human-facing name of the mirror.
func (s Source) Title() string {
	switch s {
	case GitHub:
		return "GitHub"
	default:
		return string(s)
	}
}

// URL returns the HTTPS clone URL of owner/repo on the mirror.
func (s Source) URL(owner, repo string) string {
	return fmt.Sprintf("https://%s.com/%s/%s.git", s, owner, repo)
}

// ParseSource resolves a mirror by name or title, ignoring case.
func ParseSource(name string) (Source, error) {
	for _, s := range Sources() {
		if strings.EqualFold(name, string(s)) || strings.EqualFold(name, s.Title()) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown template source %q, expected one of: gitee, github", name)
}
