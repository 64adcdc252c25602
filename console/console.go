// Package console runs a game on a line-oriented terminal: the board is
// printed as text and moves are typed as coordinates such as "b3 a4".
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"checkers-local/engine"
	"checkers-local/engine/checkers"
	"checkers-local/history"
	"checkers-local/logging"
	"checkers-local/msgcat"
	"checkers-local/types"
)

const clearSequence = "\033[H\033[2J"

// recentTurns is how many past turns are listed under the board.
const recentTurns = 4

// historian is implemented by engines that keep a turn record.
type historian interface {
	History() []history.Entry
}

// Session drives one engine from a reader and a writer.
type Session struct {
	eng    engine.GameEngine
	config engine.GameConfig
	msgs   *msgcat.Printer
	in     *bufio.Scanner
	out    io.Writer
	clear  bool

	notice string
}

// NewSession creates a session reading whitespace separated tokens from in.
// The screen is cleared between turns only when out is a terminal.
func NewSession(eng engine.GameEngine, cfg engine.GameConfig, msgs *msgcat.Printer, in io.Reader, out io.Writer) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Session{
		eng:    eng,
		config: cfg,
		msgs:   msgs,
		in:     scanner,
		out:    out,
		clear:  isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run plays until the game ends or input runs out. It returns nil when the
// game was decided and io.EOF when input ended first.
func (s *Session) Run() error {
	for {
		state := s.eng.GetBoardState()
		if err := s.draw(state); err != nil {
			return err
		}
		if state.Finished() {
			s.printf("%s\n", s.gameOverText(state.Outcome))
			return nil
		}

		var err error
		if state.Phase == types.AwaitingChainContinuation {
			err = s.chainTurn(state)
		} else {
			err = s.moveTurn(state)
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) draw(state *types.BoardState) error {
	if s.clear {
		s.printf("%s", clearSequence)
	}
	if err := RenderBoard(s.out, &state.Board); err != nil {
		return err
	}
	if h, ok := s.eng.(historian); ok {
		s.printHistory(h.History())
	}
	if s.notice != "" {
		s.printf("%s\n", s.notice)
		s.notice = ""
	}
	return nil
}

func (s *Session) printHistory(entries []history.Entry) {
	if len(entries) == 0 {
		return
	}
	if len(entries) > recentTurns {
		entries = entries[len(entries)-recentTurns:]
	}
	s.printf("\n")
	for _, e := range entries {
		s.printf("  %s: %s\n", s.config.PlayerName(e.Player), e.Notation())
	}
}

func (s *Session) moveTurn(state *types.BoardState) error {
	player := state.PlayerToMove
	s.printf("\n%s\n", s.msgs.Sprintf("status.turn", s.config.PlayerName(player), int(player)))
	if state.MustCapture() {
		s.printf("%s\n", s.msgs.Sprintf("status.must_capture"))
	}
	s.printf("%s\n> ", s.msgs.Sprintf("prompt.move"))

	first, err := s.token()
	if err != nil {
		return err
	}
	second, err := s.token()
	if err != nil {
		return err
	}

	from, errFrom := checkers.ParseSquare(first)
	to, errTo := checkers.ParseSquare(second)
	if errFrom != nil || errTo != nil {
		s.notice = s.msgs.Sprintf("input.invalid_format")
		return nil
	}

	out, err := s.eng.SubmitMove(from, to)
	s.report(out, err)
	return nil
}

func (s *Session) chainTurn(state *types.BoardState) error {
	from := *state.ChainFrom
	s.printf("\n%s\n", s.msgs.Sprintf("prompt.chain", from))
	s.printf("%s\n", s.msgs.Sprintf("prompt.landings", checkers.FormatSquares(state.Targets(from))))
	s.printf("%s\n> ", s.msgs.Sprintf("prompt.next"))

	tok, err := s.token()
	if err != nil {
		return err
	}
	to, err := checkers.ParseSquare(tok)
	if err != nil {
		s.notice = s.msgs.Sprintf("input.bad_square")
		return nil
	}

	out, err := s.eng.SubmitChainContinuation(to)
	s.report(out, err)
	return nil
}

func (s *Session) report(out types.MoveOutcome, err error) {
	if err != nil {
		logging.L().Debug("console move rejected", zap.Error(err))
		s.notice = s.msgs.Error(err)
		return
	}
	if out.Promoted {
		s.notice = s.msgs.Sprintf("status.promoted", s.config.PlayerName(out.Player), out.Move.To)
	}
}

func (s *Session) token() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", io.EOF
}

func (s *Session) gameOverText(o types.Outcome) string {
	winner := s.config.PlayerName(o.Winner)
	loser := s.config.PlayerName(o.Winner.Opponent())
	if o.Reason == types.NoLegalMoves {
		return s.msgs.Sprintf("gameover.no_legal_moves", winner, loser)
	}
	return s.msgs.Sprintf("gameover.no_pieces", winner, loser)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
