// Package shell generates the bash and zsh scripts that register the
// completion helper for the pyker command.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// scriptParams feeds the registration script templates.
type scriptParams struct {
	Command string
	Helper  string
}

const bashScript = `# bash completion for {{.Command}}, generated by {{.Helper}}
_{{.Command}}_completion() {
    local candidates
    candidates="$({{.Helper}} complete --cword "${COMP_CWORD}" --current "${COMP_WORDS[COMP_CWORD]}" -- "${COMP_WORDS[@]}" 2>/dev/null)"
    COMPREPLY=()
    if [[ -n "${candidates}" ]]; then
        while IFS='' read -r candidate; do
            COMPREPLY+=("${candidate}")
        done <<< "${candidates}"
    fi
}
complete -o nospace -F _{{.Command}}_completion {{.Command}}
`

const zshScript = `#compdef {{.Command}}
# zsh completion for {{.Command}}, generated by {{.Helper}}
autoload -U +X bashcompinit && bashcompinit
_{{.Command}}_completion() {
    local candidates
    candidates="$({{.Helper}} complete --cword "${COMP_CWORD}" --current "${COMP_WORDS[COMP_CWORD]}" -- "${COMP_WORDS[@]}" 2>/dev/null)"
    COMPREPLY=()
    if [[ -n "${candidates}" ]]; then
        while IFS='' read -r candidate; do
            COMPREPLY+=("${candidate}")
        done <<< "${candidates}"
    fi
}
complete -o nospace -F _{{.Command}}_completion {{.Command}}
`

var scriptTemplates = map[string]*template.Template{
	"bash": template.Must(template.New("bash").Parse(bashScript)),
	"zsh":  template.Must(template.New("zsh").Parse(zshScript)),
}

// helperPath is a variable that can be overridden for testing.
var helperPath = func() string {
	helper, err := os.Executable()
	if err != nil {
		return "pyker-completion"
	}
	return helper
}

// Generate renders the registration script for the given shell.
func Generate(shellName string) (string, error) {
	tmpl, ok := scriptTemplates[shellName]
	if !ok {
		return "", fmt.Errorf("unsupported shell: %s", shellName)
	}

	var buf strings.Builder
	err := tmpl.Execute(&buf, scriptParams{Command: "pyker", Helper: helperPath()})
	if err != nil {
		return "", fmt.Errorf("failed to render %s completion script: %w", shellName, err)
	}
	return buf.String(), nil
}

// Install writes the registration script into dir and returns its path.
// It never edits shell rc files; the caller is told what to source.
func Install(shellName string, dir string) (string, error) {
	content, err := Generate(shellName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create script directory: %w", err)
	}

	path := filepath.Join(dir, "pyker."+shellName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write completion script: %w", err)
	}
	return path, nil
}
