// Package cli implements a command-line UI for the game.
package cli

import (
	"bufio"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	. "github.com/janpfeifer/hexGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"io"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// MaxInputErrors is the number of consecutive invalid inputs before ReadMove gives up with
// ErrTooManyInputErrors.
const MaxInputErrors = 3

// ErrTooManyInputErrors is returned by ReadMove after MaxInputErrors invalid inputs.
var ErrTooManyInputErrors = errors.New("failed to read move 3 times")

var (
	moveParser = regexp.MustCompile(`^\s*(-?\d+)[\s,]+(-?\d+)[\s,]*$`)

	stoneStyles = [NumPlayers + 1]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("9")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")),
	}
	headerStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("14"))
	drawStyle   = lipgloss.NewStyle().
			Background(lipgloss.Color("13")).
			Foreground(lipgloss.Color("0")).
			Padding(1, 2)
)

// UI renders boards and reads the moves of a human player.
type UI struct {
	color, clearScreen bool
	reader             *bufio.Reader
	out                io.Writer
}

// New creates a UI reading from stdin and writing to stdout.
func New(color bool, clearScreen bool) *UI {
	return NewWithIO(os.Stdin, os.Stdout, color, clearScreen)
}

// NewWithIO creates a UI reading the human moves from in, and writing to out.
func NewWithIO(in io.Reader, out io.Writer, color bool, clearScreen bool) *UI {
	return &UI{
		color:       color,
		clearScreen: clearScreen,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// terminalWidth returns the width of the output terminal, or 0 if the output is not a terminal.
func (ui *UI) terminalWidth() int {
	f, ok := ui.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func (ui *UI) printCentered(block string) {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, lipgloss.Width(line))
	}
	indent := max((ui.terminalWidth()-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			_, _ = fmt.Fprintln(ui.out)
			continue
		}
		_, _ = fmt.Fprintf(ui.out, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

func (ui *UI) render(style lipgloss.Style, s string) string {
	if !ui.color {
		return s
	}
	return style.Render(s)
}

// PlayerString returns the player's name, colored as its stones.
func (ui *UI) PlayerString(player PlayerNum) string {
	return ui.render(stoneStyles[player], fmt.Sprintf("%s Player", player))
}

// BoardString renders the board as a rhombus: each row is shifted half a cell to the right of the
// previous one, so each cell touches its 6 hexagonal neighbours.
//
// Row numbers are on the left, and column numbers on top. Black connects the top and bottom rows,
// White connects the left and right columns.
func (ui *UI) BoardString(b *Board) string {
	var sb strings.Builder
	label := func(idx int) string { return fmt.Sprintf("%2d", idx) }

	// Column header.
	sb.WriteString("     ")
	for col := range b.Size {
		sb.WriteString(ui.render(headerStyle, label(col)))
		sb.WriteString("  ")
	}
	sb.WriteByte('\n')
	for row := range b.Size {
		sb.WriteString(strings.Repeat(" ", 2*row))
		sb.WriteString(ui.render(headerStyle, label(row)))
		sb.WriteString("  ")
		for col := range b.Size {
			player := b.At(Pos{Row: int8(row), Col: int8(col)})
			sb.WriteString(ui.render(stoneStyles[player], " "+CellLetters[player]+" "))
			if col < b.Size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PrintBoard prints the board centered in the terminal.
func (ui *UI) PrintBoard(b *Board) {
	ui.printCentered(ui.BoardString(b))
}

// Print the move number, the board and whose turn it is.
func (ui *UI) Print(b *Board, toPlay PlayerNum) {
	if ui.clearScreen {
		_, _ = fmt.Fprint(ui.out, "\033c")
	}
	_, _ = fmt.Fprintf(ui.out, "\nMove #%d\n\n", b.Occupied()+1)
	ui.PrintBoard(b)
	_, _ = fmt.Fprintln(ui.out)
	if toPlay.Valid() {
		_, _ = fmt.Fprintf(ui.out, "\tTurn to play: %s\n", ui.PlayerString(toPlay))
	}
}

// PrintOutcome prints the banner with the winner, or the draw.
func (ui *UI) PrintOutcome(outcome Outcome) {
	_, _ = fmt.Fprintln(ui.out)
	switch outcome {
	case FirstWins, SecondWins:
		winner := outcome.Winner()
		ui.printCentered(ui.render(stoneStyles[winner],
			fmt.Sprintf("*** %s PLAYER WINS!! Congratulations! ***", strings.ToUpper(winner.String()))))
	case Draw:
		ui.printCentered(ui.render(drawStyle, "*** DRAW: no moves left! ***"))
	default:
		ui.printCentered("*** Match not finished ***")
	}
	_, _ = fmt.Fprintln(ui.out)
}

// ReadMove reads the next move for player as "<row> <col>". Moves that don't parse or that are not
// legal are reported, and the player is asked again, up to MaxInputErrors times.
//
// It returns ErrTooManyInputErrors after too many errors, or the reader error (e.g. io.EOF).
func (ui *UI) ReadMove(rules Rules, b *Board, player PlayerNum) (Move, error) {
	legal := rules.LegalMoves(b)
	if len(legal) == 0 {
		return Move{}, errors.Errorf("no moves available for %s", player)
	}
	for range MaxInputErrors {
		_, _ = fmt.Fprintf(ui.out, "    %s move (row col) > ", ui.PlayerString(player))
		text, err := ui.reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			return Move{}, err
		}
		text = strings.TrimSpace(text)
		matches := moveParser.FindStringSubmatch(text)
		if len(matches) != 3 {
			_, _ = fmt.Fprintf(ui.out, "    * Failed to parse your input %q, please type the row and column, e.g. \"%d %d\"\n",
				text, legal[0].Row, legal[0].Col)
			continue
		}
		row, errRow := strconv.ParseInt(matches[1], 10, 8)
		col, errCol := strconv.ParseInt(matches[2], 10, 8)
		move := Move{Row: int8(row), Col: int8(col)}
		if errRow != nil || errCol != nil || !slices.Contains(legal, move) {
			_, _ = fmt.Fprintf(ui.out, "    * %s is not a valid move, choose an empty cell of the %dx%d board\n",
				text, b.Size, b.Size)
			continue
		}
		return move, nil
	}
	return Move{}, ErrTooManyInputErrors
}

// RunNextMove prints the board, reads the move of the human player and returns the new board.
// It keeps asking while the input is invalid, and only returns on a valid move or a reader error.
func (ui *UI) RunNextMove(rules Rules, b *Board, player PlayerNum) (*Board, Move, error) {
	for {
		ui.Print(b, player)
		_, _ = fmt.Fprintln(ui.out)
		move, err := ui.ReadMove(rules, b, player)
		if errors.Is(err, ErrTooManyInputErrors) {
			continue
		}
		if err != nil {
			return b, move, errors.Wrapf(err, "failed to read move for %s", player)
		}
		return b.Act(move, player), move, nil
	}
}
