package main

import (
	"github.com/pterm/pterm"

	"github.com/N1troZeuZ/BJProgram/domain/blackjack"
	"github.com/N1troZeuZ/BJProgram/store"
)

// renderer draws the table events as they happen.
type renderer struct{}

func (renderer) CardDealt(seat string, card blackjack.Card, hidden bool) {
	if hidden {
		pterm.Printfln("%s draws %s", seat, blackjack.FaceDown)
		return
	}
	pterm.Printfln("%s draws %s", seat, card.String())
}

func (renderer) DeckReshuffled(remaining int) {
	pterm.Warning.Printfln("The deck ran out, shuffling a fresh one (%d cards behind the cut).", remaining)
}

func (renderer) PlayerBusted(name string, score int) {
	pterm.Printfln("%s %s", pterm.LightCyan(name), pterm.LightRed(pterm.Sprintf("busts at %d!", score)))
}

func (renderer) TurnEnded(name string, hand blackjack.Hand) {
	note := ""
	if hand.Doubled {
		note = " (doubled down)"
	}
	pterm.Printfln("%s stands at %d%s", pterm.LightCyan(name), hand.Score(), note)
}

func (renderer) RoundResolved(dealer blackjack.Hand, results []blackjack.Result) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)

	dealerInfo := pterm.Sprintf("%s\nScore: %d", dealer.String(), dealer.Score())
	if dealer.Busted() {
		dealerInfo += pterm.LightRed("  BUST")
	}
	dealerPanel := pterm.Panel{Data: pbox.WithTitle("Dealer").WithTitleTopCenter().Sprint(dealerInfo)}

	var seatPanels []pterm.Panel
	for _, r := range results {
		seatPanels = append(seatPanels, pterm.Panel{Data: pbox.WithTitle(r.Player).WithTitleTopLeft().Sprint(resultInfo(r))})
	}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{dealerPanel},
		seatPanels,
	}).Render()
}

func resultInfo(r blackjack.Result) string {
	var verdict string
	switch r.Outcome {
	case blackjack.OutcomeWin:
		verdict = pterm.LightGreen(pterm.Sprintf("wins %d", r.NetWin()))
	case blackjack.OutcomePush:
		verdict = pterm.LightYellow("push, bet returned")
	case blackjack.OutcomeBust:
		verdict = pterm.LightRed(pterm.Sprintf("busted, loses %d", r.Bet))
	default:
		verdict = pterm.LightRed(pterm.Sprintf("loses %d", r.Bet))
	}
	return pterm.Sprintf("Score: %d vs %d\nBet: %d\n%s", r.PlayerScore, r.DealerScore, r.Bet, verdict)
}

func renderLeaderboard(entries []store.Entry) {
	if len(entries) == 0 {
		pterm.Info.Println("Nobody on the leaderboard yet.")
		return
	}
	data := pterm.TableData{{"#", "Player", "Net winnings"}}
	for i, e := range entries {
		data = append(data, []string{
			pterm.Sprintf("%d", i+1),
			e.Name,
			pterm.Sprintf("%d", e.Won),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
