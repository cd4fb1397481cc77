// Package completion implements tab completion for the pyker command.
// It routes each completion request to the appropriate candidate source
// (static word lists, process names from pyker's registry, or filesystem
// matches) based on the subcommand and the position of the word being
// completed.
package completion

import (
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/gis116/pyker/internal/config"
	"github.com/gis116/pyker/internal/registry"
)

const venvFlagPrefix = "--venv="

var (
	subcommandWords = []string{"delete", "info", "list", "logs", "restart", "start", "stop", "uninstall"}
	startFlagWords  = []string{"--auto-restart", "--venv="}
	logsFlagWords   = []string{"-f", "--follow", "-n", "--lines"}
	logsLineCounts  = []string{"10", "20", "50", "100", "200", "500"}
)

// Provider answers completion requests. It is stateless between requests:
// the registry and the filesystem are re-read every time, so identical
// input and identical on-disk state always produce identical candidates.
type Provider struct {
	names     registry.NameSource
	cfg       *config.Config
	logger    *zap.Logger
	pwdGetter func() string
}

// NewProvider creates a completion Provider. A nil config falls back to
// defaults and a nil logger to a nop logger.
func NewProvider(names registry.NameSource, cfg *config.Config, logger *zap.Logger) *Provider {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Provider{
		names:     names,
		cfg:       cfg,
		logger:    logger,
		pwdGetter: defaultPwd,
	}
}

// Complete returns candidates for the word at index cword. words holds the
// command line split into words, with words[0] being the pyker command
// itself; current is the partial word being completed (it may not be part
// of words yet when a new word is being started). The result is never nil
// and this method never fails; any problem degrades to no candidates.
func (p *Provider) Complete(words []string, cword int, current string) []string {
	switch resolve(words, cword) {
	case subcommands:
		return matchWords(subcommandWords, current)

	case processNames:
		return p.completeProcessNames(current)

	case anyPath:
		return GetFileCompletions(current, p.pwdGetter())

	case scriptPath:
		return GetScriptCompletions(current, p.pwdGetter(), p.cfg.ScriptExtensions)

	case startFlags:
		if rest, ok := strings.CutPrefix(current, venvFlagPrefix); ok {
			return GetDirectoryCompletions(rest, p.pwdGetter())
		}
		return matchWords(startFlagWords, current)

	case logsFlags:
		if cword >= 4 && len(words) > 3 && isLinesFlag(words[3]) {
			return matchWords(logsLineCounts, current)
		}
		return matchWords(logsFlagWords, current)

	default:
		return []string{}
	}
}

// completeProcessNames matches registry names by prefix. When fuzzy
// matching is enabled in the config, it kicks in only after strict prefix
// matching found nothing, so default behavior stays plain prefix matching.
func (p *Provider) completeProcessNames(prefix string) []string {
	if p.names == nil {
		return []string{}
	}

	names := p.names.ProcessNames()
	matches := matchWords(names, prefix)
	if len(matches) > 0 || prefix == "" || !p.cfg.FuzzyProcessNames {
		return matches
	}

	ranked := fuzzy.Find(prefix, names)
	fuzzyMatches := make([]string, 0, len(ranked))
	for _, match := range ranked {
		fuzzyMatches = append(fuzzyMatches, match.Str)
	}
	return fuzzyMatches
}

func matchWords(words []string, prefix string) []string {
	return lo.Filter(words, func(word string, _ int) bool {
		return strings.HasPrefix(word, prefix)
	})
}

func isLinesFlag(word string) bool {
	return word == "-n" || word == "--lines"
}

func defaultPwd() string {
	pwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return pwd
}
