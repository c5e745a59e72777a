package application

import (
	"strconv"
	"strings"
)

// CommandKind enumerates the closed set of navigator commands.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdHelp
	CmdExit
	CmdLs
	CmdGoto
	CmdUp
	CmdPath
	CmdInfo
	CmdCopy
	CmdJump
)

// CommandNames is the fixed command vocabulary, used for completion.
var CommandNames = []string{"help", "exit", "ls", "goto", "p", "path", "copy", "?"}

// Command is one decoded input line: the kind plus its parsed payload.
type Command struct {
	Kind  CommandKind
	Query *Query // ls, goto
	Steps int    // p
	Name  string // jump target
}

// ParseCommand decodes an input line into a command variant. Unknown first
// tokens become a CmdJump carrying the token; whether that names a neighbor
// is decided by the navigator.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: CmdNone}, nil
	}

	switch strings.ToLower(fields[0]) {
	case "help":
		return Command{Kind: CmdHelp}, nil
	case "exit":
		return Command{Kind: CmdExit}, nil
	case "ls":
		q, err := ParseQuery(fields[1:])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdLs, Query: q}, nil
	case "goto":
		q, err := ParseQuery(fields[1:])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdGoto, Query: q}, nil
	case "p":
		steps := 1
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return Command{}, &ParseError{Token: fields[1], Reason: "not a number"}
			}
			if n > 1 {
				steps = n
			}
		}
		return Command{Kind: CmdUp, Steps: steps}, nil
	case "path":
		return Command{Kind: CmdPath}, nil
	case "?":
		return Command{Kind: CmdInfo}, nil
	case "copy":
		return Command{Kind: CmdCopy}, nil
	default:
		return Command{Kind: CmdJump, Name: fields[0]}, nil
	}
}
