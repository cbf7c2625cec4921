// Package cli implements the line-mode front-end over the engine. It
// owns no rules of its own: every click-equivalent goes through the
// game's selection interface, and the bot reply is armed on the
// shared scheduler so a reset or undo can cancel it.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/hailam/chessmate/internal/board"
	"github.com/hailam/chessmate/internal/bot"
	"github.com/hailam/chessmate/internal/game"
	"github.com/hailam/chessmate/internal/storage"
)

// App wires the engine, the bot, the scheduler and storage into an
// interactive terminal session.
type App struct {
	game  *game.Game
	bot   bot.Bot
	sched *game.Scheduler

	store *storage.Storage
	prefs *storage.Preferences

	playerColor board.Color
	replyDelay  time.Duration

	in  io.Reader
	out io.Writer

	// botReady is signalled by the scheduler's task; the main loop
	// applies the bot move so all game mutation stays on one goroutine.
	botReady chan struct{}
	recorded bool
}

// NewApp creates an app reading commands from in and printing to out.
func NewApp(in io.Reader, out io.Writer) *App {
	a := &App{
		game:     game.New(),
		bot:      bot.NewGreedyBot(),
		sched:    game.NewScheduler(),
		in:       in,
		out:      out,
		botReady: make(chan struct{}, 1),
	}

	var err error
	a.store, err = storage.NewStorage()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}

	a.loadPreferences()
	return a
}

// loadPreferences loads stored settings, falling back to defaults.
func (a *App) loadPreferences() {
	if a.store == nil {
		a.prefs = storage.DefaultPreferences()
	} else {
		var err error
		a.prefs, err = a.store.LoadPreferences()
		if err != nil {
			log.Printf("Warning: Failed to load preferences: %v", err)
			a.prefs = storage.DefaultPreferences()
		}
	}

	a.playerColor = board.White
	if a.prefs.PlayerColor == storage.ColorBlack {
		a.playerColor = board.Black
	}
	a.replyDelay = a.prefs.ReplyDelay
	if a.replyDelay <= 0 {
		a.replyDelay = storage.DefaultPreferences().ReplyDelay
	}
}

// savePreferences writes current settings back to storage.
func (a *App) savePreferences() {
	if a.store == nil {
		return
	}

	a.prefs.PlayerColor = storage.ColorWhite
	if a.playerColor == board.Black {
		a.prefs.PlayerColor = storage.ColorBlack
	}
	a.prefs.ReplyDelay = a.replyDelay

	if err := a.store.SavePreferences(a.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// SetPlayerColor overrides which color the human plays.
func (a *App) SetPlayerColor(c board.Color) {
	a.playerColor = c
}

// SetReplyDelay overrides the bot's thinking delay.
func (a *App) SetReplyDelay(d time.Duration) {
	a.replyDelay = d
}

func (a *App) botColor() board.Color {
	return a.playerColor.Other()
}

// Run drives the session until quit or end of input.
func (a *App) Run() {
	fmt.Fprintf(a.out, "chessmate: you play %s against %s\n", a.playerColor, a.bot.Name())
	fmt.Fprintln(a.out, `commands: e2e4 (move, e7e8q to promote), moves e2, undo, new, stats, quit`)
	fmt.Fprint(a.out, a.game.Board())

	if a.game.Turn() == a.botColor() {
		a.armBot()
	}

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		select {
		case line, ok := <-lines:
			if !ok || !a.handleLine(line) {
				a.sched.Cancel()
				a.savePreferences()
				if a.store != nil {
					a.store.Close()
				}
				return
			}
		case <-a.botReady:
			a.playBotMove()
		}
	}
}

// handleLine processes one command; false means quit.
func (a *App) handleLine(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "quit", "exit":
		return false

	case "new":
		a.cancelBot()
		a.game.Reset()
		a.recorded = false
		fmt.Fprint(a.out, a.game.Board())
		if a.game.Turn() == a.botColor() {
			a.armBot()
		}

	case "undo":
		a.cancelBot()
		// Take back the bot's reply as well, so it is the player's
		// turn again afterwards.
		a.game.Undo()
		if a.game.Turn() != a.playerColor {
			a.game.Undo()
		}
		a.recorded = false
		fmt.Fprint(a.out, a.game.Board())
		// Nothing left to take back for the player: the opener was
		// the bot's, so let it open again.
		if a.game.Turn() == a.botColor() {
			a.armBot()
		}

	case "moves":
		if len(fields) < 2 {
			fmt.Fprintln(a.out, "usage: moves <square>")
			return true
		}
		a.showMoves(fields[1])

	case "stats":
		a.showStats()

	default:
		a.handleMove(fields[0])
	}

	return true
}

// showMoves prints the legal destinations of the piece on a square.
func (a *App) showMoves(square string) {
	pos, err := board.ParsePosition(square)
	if err != nil {
		fmt.Fprintf(a.out, "bad square: %s\n", square)
		return
	}

	r := a.game.SelectSquare(pos.Row, pos.Col)
	if r.Action != game.ActionSelected {
		fmt.Fprintf(a.out, "no piece of the side to move on %s\n", pos)
		return
	}

	if len(r.Destinations) == 0 {
		fmt.Fprintf(a.out, "%s has no legal moves\n", pos)
		return
	}

	names := make([]string, len(r.Destinations))
	for i, d := range r.Destinations {
		names[i] = d.String()
	}
	fmt.Fprintf(a.out, "%s: %s\n", pos, strings.Join(names, " "))
}

// handleMove parses coordinate input like "e2e4" or "e7e8q" and plays
// it through the selection interface.
func (a *App) handleMove(input string) {
	if a.game.GameOver() {
		fmt.Fprintln(a.out, "game over, type new to play again")
		return
	}
	if a.game.Turn() != a.playerColor {
		fmt.Fprintln(a.out, "waiting for the reply...")
		return
	}

	from, to, promo, err := parseMoveInput(input)
	if err != nil {
		fmt.Fprintf(a.out, "don't understand %q (try e2e4, or help via the command list)\n", input)
		return
	}

	if r := a.game.SelectSquare(from.Row, from.Col); r.Action != game.ActionSelected {
		fmt.Fprintf(a.out, "no piece you can move on %s\n", from)
		return
	}

	switch r := a.game.SelectSquare(to.Row, to.Col); r.Action {
	case game.ActionMoved:
		a.afterMove(r.Move)

	case game.ActionPromotionNeeded:
		if promo == board.NoPieceType {
			fmt.Fprintf(a.out, "promotion: append a piece letter, e.g. %s%sq\n", from, to)
			return
		}
		if a.game.Apply(r.From, r.To, promo) {
			m, _ := a.game.LastMove()
			a.afterMove(m)
		}

	default:
		fmt.Fprintf(a.out, "%s%s is not legal\n", from, to)
	}
}

// afterMove reports a committed move and arms the bot if it is now the
// automated side's turn.
func (a *App) afterMove(m board.Move) {
	fmt.Fprintf(a.out, "played %s\n", m)
	fmt.Fprint(a.out, a.game.Board())
	a.announceState()

	if a.game.GameOver() {
		a.recordFinishedGame()
		return
	}
	if a.game.Turn() == a.botColor() {
		a.armBot()
	}
}

// announceState prints check and game-over notices.
func (a *App) announceState() {
	if a.game.GameOver() {
		fmt.Fprintln(a.out, a.game.Result())
		a.ring()
		return
	}
	if a.game.InCheck(a.game.Turn()) {
		fmt.Fprintf(a.out, "%s is in check\n", a.game.Turn())
		a.ring()
	}
}

// ring sounds the terminal bell when sound is enabled. Any failure to
// produce audio is the terminal's problem, not the game's.
func (a *App) ring() {
	if a.prefs != nil && a.prefs.SoundEnabled {
		fmt.Fprint(a.out, "\a")
	}
}

// armBot schedules the automated reply. The task only signals the
// main loop; the move itself is applied there.
func (a *App) armBot() {
	a.sched.Schedule(a.replyDelay, func() {
		select {
		case a.botReady <- struct{}{}:
		default:
		}
	})
}

// cancelBot disarms any pending reply and drains a signal that may
// already have fired.
func (a *App) cancelBot() {
	a.sched.Cancel()
	select {
	case <-a.botReady:
	default:
	}
}

// playBotMove asks the bot for a move and applies it.
func (a *App) playBotMove() {
	if a.game.GameOver() || a.game.Turn() != a.botColor() {
		return
	}

	from, to, ok := a.bot.ChooseMove(a.game.Board(), a.botColor())
	if !ok {
		// No legal move: the terminal status is already latched.
		a.announceState()
		return
	}

	promo := board.NoPieceType
	if a.game.NeedsPromotion(from, to) {
		promo = board.Queen
	}

	if !a.game.Apply(from, to, promo) {
		return
	}

	m, _ := a.game.LastMove()
	fmt.Fprintf(a.out, "%s plays %s\n", a.bot.Name(), m)
	fmt.Fprint(a.out, a.game.Board())
	a.announceState()

	if a.game.GameOver() {
		a.recordFinishedGame()
	}
}

// recordFinishedGame saves the finished game and updates statistics.
func (a *App) recordFinishedGame() {
	if a.store == nil || a.recorded {
		return
	}

	hist := a.game.History()
	moves := make([]string, len(hist))
	for i, m := range hist {
		moves[i] = m.String()
	}

	status := a.game.Status(a.game.Turn())
	rec := storage.GameRecord{
		Moves:  moves,
		Result: a.game.Result(),
		Won:    status == game.Checkmate && a.game.Turn() == a.botColor(),
		Draw:   status == game.Stalemate,
	}

	if err := a.store.RecordGame(rec); err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
		return
	}
	a.recorded = true
}

// showStats prints stored statistics.
func (a *App) showStats() {
	if a.store == nil {
		fmt.Fprintln(a.out, "storage unavailable")
		return
	}

	stats, err := a.store.LoadStats()
	if err != nil {
		log.Printf("Warning: Failed to load stats: %v", err)
		return
	}

	fmt.Fprintf(a.out, "games: %d  wins: %d  losses: %d  draws: %d  win rate: %.0f%%\n",
		stats.GamesPlayed, stats.Wins, stats.Losses, stats.Draws, stats.GetWinRate())
}

// parseMoveInput parses "e2e4" or "e7e8q" into source, destination and
// an optional promotion piece type.
func parseMoveInput(s string) (from, to board.Position, promo board.PieceType, err error) {
	promo = board.NoPieceType

	if len(s) != 4 && len(s) != 5 {
		err = fmt.Errorf("invalid move: %s", s)
		return
	}

	if from, err = board.ParsePosition(s[0:2]); err != nil {
		return
	}
	if to, err = board.ParsePosition(s[2:4]); err != nil {
		return
	}

	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = board.Knight
		case 'b':
			promo = board.Bishop
		case 'r':
			promo = board.Rook
		case 'q':
			promo = board.Queen
		default:
			err = fmt.Errorf("invalid promotion piece: %c", s[4])
		}
	}

	return
}
