// Package blackjack implements the domain logic for a table of blackjack:
// cards, the deck, ace-adjusted hand scoring, seat policies, and the round
// engine that deals, takes bets, runs each seat's action loop, plays the
// dealer, and settles payouts.
//
// # Core Types
//
// Card: a playing card with suit and rank; its point value follows the fixed
// blackjack table (faces 10, ace nominally 11).
//
// Deck: a shuffled 52-card stack that rebuilds and reshuffles itself when
// drawn empty, reporting the reshuffle to observers.
//
// Hand: one party's cards plus the doubled flag; Score applies the ace
// adjustment and Kind classifies the hand (natural, hard, soft, plain).
//
// Player: a seat with a persistent balance and a round-scoped hand and wager.
//
// Table: the round engine. It is pure in-memory logic: persistence and
// rendering live outside, fed through the Prompter and Observer interfaces.
//
// # House Rules
//
// Dealer stands on 17. One bet per hand, one double-down per hand, doubles
// are human-only. AI seats bet min(100, balance) and hit below 17. A win
// pays the bet 1:1 (twice the bet returned), a push refunds the bet.
package blackjack
