package completion

// candidateSource identifies where the candidates for a dispatch position
// come from.
type candidateSource int

const (
	none candidateSource = iota
	subcommands
	processNames
	anyPath
	scriptPath
	startFlags
	logsFlags
)

// maxDispatchWord is the word index at which dispatch stops distinguishing
// positions; every later word behaves like this one.
const maxDispatchWord = 4

// dispatchTable maps subcommand and word index to a candidate source.
// Word index 0 is the pyker command itself and index 1 the subcommand;
// positions absent from the table complete to nothing.
var dispatchTable = map[string]map[int]candidateSource{
	"start":     {2: anyPath, 3: scriptPath, 4: startFlags},
	"stop":      {2: processNames},
	"restart":   {2: processNames},
	"delete":    {2: processNames},
	"list":      {},
	"logs":      {2: processNames, 3: logsFlags, 4: logsFlags},
	"info":      {2: processNames},
	"uninstall": {},
}

// resolve picks the candidate source for the word at cword.
func resolve(words []string, cword int) candidateSource {
	if cword == 1 {
		return subcommands
	}
	if cword < 1 || len(words) < 2 {
		return none
	}

	positions, ok := dispatchTable[words[1]]
	if !ok {
		return none
	}

	idx := cword
	if idx > maxDispatchWord {
		idx = maxDispatchWord
	}

	source, ok := positions[idx]
	if !ok {
		return none
	}
	return source
}
