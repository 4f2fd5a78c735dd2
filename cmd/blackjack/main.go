package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/N1troZeuZ/BJProgram/config"
	"github.com/N1troZeuZ/BJProgram/domain/blackjack"
	"github.com/N1troZeuZ/BJProgram/session"
	"github.com/N1troZeuZ/BJProgram/store"
)

const (
	menuPlay   = "Play a round"
	menuNew    = "New player"
	menuSwitch = "Switch player"
	menuDelete = "Delete player"
	menuBots   = "Add AI players"
	menuBoard  = "Leaderboard"
	menuQuit   = "Quit"
)

func main() {
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("Jack", pterm.FgRed.ToStyle()),
	).Render()

	cfg := config.Load()
	registry := store.NewRegistry(cfg.RegistryPath(), logger)
	board := store.NewLeaderboard(cfg.LeaderboardPath(), logger)
	active := store.NewActiveSeat(cfg.ActiveSeatPath(), logger)
	sess := session.New(registry, board, active, cfg.StartingBalance, logger)

	if name := sess.RestoreActive(); name != "" {
		pterm.Info.Printfln("Welcome back, %s", pterm.LightCyan(name))
	}

	prompter := terminalPrompter{}
	pace := func() { time.Sleep(cfg.PacingDelay) }

	for {
		pterm.Println()
		choice, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("What would you like to do?").
			WithOptions([]string{menuPlay, menuNew, menuSwitch, menuDelete, menuBots, menuBoard, menuQuit}).
			Show()

		switch choice {
		case menuPlay:
			playRound(sess, prompter, pace)
		case menuNew:
			createPlayer(sess)
		case menuSwitch:
			switchPlayer(sess)
		case menuDelete:
			deletePlayer(sess)
		case menuBots:
			addBots(sess)
		case menuBoard:
			renderLeaderboard(sess.Leaderboard())
		case menuQuit:
			pterm.Info.Println("Thanks for playing!")
			return
		}
	}
}

func playRound(sess *session.Session, prompter terminalPrompter, pace func()) {
	if sess.Human() == nil {
		pterm.Warning.Println("Select or create a player before playing.")
		return
	}
	if _, err := sess.PlayRound(prompter, renderer{}, pace); err != nil {
		pterm.Error.Printfln("Round could not start: %v", err)
		return
	}
	if human := sess.Human(); human != nil {
		pterm.Info.Printfln("%s's balance: %d", pterm.LightCyan(human.Name), human.Balance)
	} else {
		pterm.Warning.Println("You are out of chips!")
	}
}

func createPlayer(sess *session.Session) {
	name, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Enter the new player's name").
		Show()
	if err := sess.Create(strings.TrimSpace(name)); err != nil {
		pterm.Error.Printfln("Could not create player: %v", err)
		return
	}
	pterm.Success.Printfln("Welcome to the table, %s", pterm.LightCyan(strings.TrimSpace(name)))
}

func switchPlayer(sess *session.Session) {
	names := rosterNames(sess)
	if len(names) == 0 {
		pterm.Warning.Println("No players registered yet.")
		return
	}
	name, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Who is playing?").
		WithOptions(names).
		Show()
	if err := sess.Select(name); err != nil {
		pterm.Error.Printfln("Could not select player: %v", err)
		return
	}
	pterm.Success.Printfln("%s takes the seat.", pterm.LightCyan(name))
}

func deletePlayer(sess *session.Session) {
	names := rosterNames(sess)
	if len(names) == 0 {
		pterm.Warning.Println("No players registered yet.")
		return
	}
	name, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Delete which player?").
		WithOptions(names).
		Show()
	confirm, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultText(fmt.Sprintf("Really delete %s and their balance?", name)).
		Show()
	if !confirm {
		pterm.Info.Println("Nothing deleted.")
		return
	}
	if err := sess.Delete(name); err != nil {
		pterm.Error.Printfln("Could not delete player: %v", err)
		return
	}
	pterm.Success.Printfln("%s is gone.", name)
}

func addBots(sess *session.Session) {
	raw, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText(fmt.Sprintf("How many AI players? (%d-%d)", session.MinBots, session.MaxBots)).
		Show()
	count, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		pterm.Error.Println("That is not a number.")
		return
	}
	if err := sess.AddBots(count); err != nil {
		pterm.Error.Printfln("Could not add AI players: %v", err)
		return
	}
	pterm.Success.Printfln("%d AI player(s) joined the table.", count)
}

func rosterNames(sess *session.Session) []string {
	roster := sess.Roster()
	names := make([]string, 0, len(roster))
	for name := range roster {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// terminalPrompter supplies raw human input; the table validates it and asks
// again until it is legal.
type terminalPrompter struct{}

func (terminalPrompter) Bet(name string, balance int) int {
	raw, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText(fmt.Sprintf("%s, place your bet (1-%d)", name, balance)).
		Show()
	amount, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		pterm.Error.Println("Bets must be a whole number of chips.")
		return 0
	}
	return amount
}

func (terminalPrompter) Action(v blackjack.TurnView) blackjack.Action {
	options := []string{"Hit", "Stand"}
	if v.CanDouble {
		options = append(options, "Double down")
	}
	pterm.Println()
	pterm.Info.Printfln("%s: %s (%d, %s), dealer shows %s",
		pterm.LightCyan(v.Name), v.Hand.String(), v.Hand.Score(), v.Hand.Kind(), v.DealerUp.String())

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Your move").
		WithOptions(options).
		Show()
	switch choice {
	case "Hit":
		return blackjack.ActionHit
	case "Double down":
		return blackjack.ActionDouble
	default:
		return blackjack.ActionStand
	}
}
