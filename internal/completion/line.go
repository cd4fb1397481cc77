package completion

import (
	"strings"

	"go.uber.org/zap"
	"mvdan.cc/sh/v3/shell"
)

// CompleteLine completes against a raw command line, as handed over by the
// shell through COMP_LINE and COMP_POINT. The line is split with shell
// quoting rules; a trailing space means a new word is being started. Split
// failures (for example an unterminated quote) degrade to no candidates.
func (p *Provider) CompleteLine(line string, point int) []string {
	if point >= 0 && point < len(line) {
		line = line[:point]
	}

	words, err := shell.Fields(line, nil)
	if err != nil {
		p.logger.Debug("failed to split completion line",
			zap.String("line", line),
			zap.Error(err),
		)
		return []string{}
	}

	if strings.HasSuffix(line, " ") {
		words = append(words, "")
	}

	cword := len(words) - 1
	if cword < 1 {
		// Still completing the command name itself, which belongs to the
		// shell, not to pyker.
		return []string{}
	}

	return p.Complete(words, cword, words[cword])
}
