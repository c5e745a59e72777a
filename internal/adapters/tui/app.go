package tui

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taxnav/internal/adapters/tui/styles"
	"taxnav/internal/application"
	"taxnav/internal/domain"
)

// defaultWrapWidth is used before the terminal reports its size.
const defaultWrapWidth = 70

// App is the REPL model. It runs inline (no alt screen), emitting executed
// output above the prompt with tea.Println.
type App struct {
	nav   *application.Navigator
	input textinput.Model

	history []string
	histPos int
	draft   string

	width int
}

// NewApp creates the REPL rooted at nav, seeded with persisted history.
func NewApp(nav *application.Navigator, history []string) *App {
	input := textinput.New()
	input.Prompt = "> "
	input.ShowSuggestions = true
	// Up/down recall history; suggestion browsing moves to ctrl+p/ctrl+n.
	input.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	input.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	input.Focus()

	a := &App{
		nav:     nav,
		input:   input,
		history: history,
		histPos: len(history),
	}
	a.refreshSuggestions()
	return a
}

// History returns the session history for persistence on exit.
func (a *App) History() []string {
	return a.history
}

// Init prints the arrival line for the starting node.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.Println(nodeLine(a.nav.Node())))
}

// Update handles terminal events.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.input.SetValue("")
			a.histPos = len(a.history)
			return a, nil

		case "ctrl+d":
			if a.input.Value() == "" {
				return a, tea.Quit
			}
			return a, nil

		case "up":
			a.recallPrev()
			return a, nil

		case "down":
			a.recallNext()
			return a, nil

		case "enter":
			line := strings.TrimSpace(a.input.Value())
			a.input.SetValue("")
			if line == "" {
				return a, nil
			}
			a.history = append(a.history, line)
			a.histPos = len(a.history)

			cmds := append([]tea.Cmd{tea.Println(styles.Echo.Render("> " + line))}, a.execute(line)...)
			return a, tea.Sequence(cmds...)
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// View renders the prompt line.
func (a *App) View() string {
	return a.input.View() + "\n"
}

func (a *App) recallPrev() {
	if a.histPos == 0 {
		return
	}
	if a.histPos == len(a.history) {
		a.draft = a.input.Value()
	}
	a.histPos--
	a.input.SetValue(a.history[a.histPos])
	a.input.CursorEnd()
}

func (a *App) recallNext() {
	if a.histPos >= len(a.history) {
		return
	}
	a.histPos++
	if a.histPos == len(a.history) {
		a.input.SetValue(a.draft)
	} else {
		a.input.SetValue(a.history[a.histPos])
	}
	a.input.CursorEnd()
}

// execute runs one decoded command against the navigator and returns the
// output commands. All errors stay local to the command; the position only
// changes on a successful move.
func (a *App) execute(line string) []tea.Cmd {
	cmd, err := application.ParseCommand(line)
	if err != nil {
		return a.printError(err)
	}

	switch cmd.Kind {
	case application.CmdHelp:
		return []tea.Cmd{tea.Println(helpText())}

	case application.CmdExit:
		return []tea.Cmd{tea.Quit}

	case application.CmdLs:
		matches, err := a.nav.Search(cmd.Query)
		if err != nil {
			return a.printError(err)
		}
		return a.printNodes(matches)

	case application.CmdGoto:
		next, matches, err := a.nav.Goto(cmd.Query)
		if errors.Is(err, application.ErrNoUniqueEntry) {
			out := []tea.Cmd{tea.Println(styles.ErrorMsg.Render("No unique entry found:"))}
			return append(out, a.printNodes(matches)...)
		}
		if err != nil {
			return a.printError(err)
		}
		return a.moveTo(next)

	case application.CmdUp:
		next, err := a.nav.Up(cmd.Steps)
		if err != nil {
			return a.printError(err)
		}
		return a.moveTo(next)

	case application.CmdPath:
		parts := make([]string, 0, len(a.nav.Breadcrumb()))
		for _, n := range a.nav.Breadcrumb() {
			parts = append(parts, nodeLine(n))
		}
		return []tea.Cmd{tea.Println(strings.Join(parts, " -> "))}

	case application.CmdInfo:
		node := a.nav.Node()
		if node.Description == "" {
			return []tea.Cmd{tea.Println(styles.ErrorMsg.Render(fmt.Sprintf("No info for %s", node.Name)))}
		}
		return []tea.Cmd{tea.Println(a.wrapInfo(node.Description))}

	case application.CmdCopy:
		if err := clipboard.WriteAll(a.nav.Node().Path); err != nil {
			return a.printError(fmt.Errorf("failed to copy path: %w", err))
		}
		return []tea.Cmd{tea.Println(styles.Notice.Render("Copied " + a.nav.Node().Path))}

	case application.CmdJump:
		next, err := a.nav.Jump(cmd.Name)
		if err != nil {
			return a.printError(err)
		}
		return a.moveTo(next)
	}

	return nil
}

// moveTo swaps in the new position, rebuilds the completion candidates and
// announces the node.
func (a *App) moveTo(next *application.Navigator) []tea.Cmd {
	a.nav = next
	a.refreshSuggestions()
	return []tea.Cmd{tea.Println(nodeLine(a.nav.Node()))}
}

func (a *App) refreshSuggestions() {
	a.input.SetSuggestions(append(a.nav.Candidates(), application.CommandNames...))
}

func (a *App) printError(err error) []tea.Cmd {
	return []tea.Cmd{tea.Println(styles.ErrorMsg.Render(capitalize(err.Error())))}
}

func (a *App) printNodes(nodes []*domain.Node) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(nodes))
	for _, n := range nodes {
		cmds = append(cmds, tea.Println(nodeLine(n)))
	}
	return cmds
}

func (a *App) wrapInfo(info string) string {
	width := a.width
	if width <= 2 {
		width = defaultWrapWidth
	} else if width > defaultWrapWidth+8 {
		width = defaultWrapWidth + 8
	}

	style := styles.Wrapped(width)
	paragraphs := strings.Split(info, "\n")
	for i, p := range paragraphs {
		paragraphs[i] = style.Render(p)
	}
	return strings.Join(paragraphs, "\n")
}

func nodeLine(n *domain.Node) string {
	return styles.Rank(n.Rank.Color()).Render(n.Label())
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func helpText() string {
	arg := styles.HelpArg.Render
	entries := []struct {
		cmd  string
		desc string
	}{
		{"help", "Show this guide."},
		{"exit", "Exit program."},
		{"ls", strings.Join([]string{
			"Search for nodes. Available arguments are:",
			fmt.Sprintf("  %s: search a distance %s down the tree", arg("-d<num>"), arg("<num>")),
			fmt.Sprintf("  %s: search a range of distances", arg("-d<num1>..<num2>")),
			fmt.Sprintf("  %s: search for nodes on a specific rank", arg("-l<rank>")),
			fmt.Sprintf("  %s: part of the name of the node", arg("<text>")),
			fmt.Sprintf("  With no arguments, defaults to %s.", arg("-d1")),
		}, "\n")},
		{"goto", "Go to node. Takes the same arguments as `ls'."},
		{"p <num>", fmt.Sprintf("Go %s levels higher. %s defaults to 1.", arg("<num>"), arg("<num>"))},
		{"path", "Show the current location as a path from root."},
		{"?", "Show information about the current node."},
		{"copy", "Copy the current node's path to the clipboard."},
		{"<node>", "Jump directly to an ancestor or direct child by name."},
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s: %s", styles.HelpCmd.Render(e.cmd), e.desc))
	}
	return strings.Join(lines, "\n")
}
