package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jpablo128/baraha/internal/card"
)

// PlayerNum identifies a seat, 1..4.
type PlayerNum int

const NumPlayers = 4

var (
	ErrNotInHand          = errors.New("cards not in hand")
	ErrIllegalCombination = errors.New("not a legal combination")
	ErrMustStartWithLow   = errors.New("opening play must include the lowest card")
	ErrPassForbidden      = errors.New("pass not allowed")
	ErrCannotFollow       = errors.New("play does not beat the last combination")
)

// TurnKind tells the active player what they may do.
type TurnKind int

const (
	// TurnStart opens the game: no pass, lowest card required.
	TurnStart TurnKind = iota
	// TurnFollow must match the last play's size and beat its value, or pass.
	TurnFollow
	// TurnAny leads fresh with any combination; pass forbidden.
	TurnAny
	// TurnEnd means three players have finished.
	TurnEnd
)

// Turn pairs a kind with the player it addresses. Player is zero for
// TurnEnd.
type Turn struct {
	Kind   TurnKind
	Player PlayerNum
}

// Game holds the authoritative table state for one session. It is
// exclusively owned by the dealer state machine; all mutation goes
// through AttemptPlay.
type Game struct {
	hands    [NumPlayers + 1]card.Cards // 1-indexed by seat
	discards card.Cards                 // audit record, never consulted
	turn     PlayerNum
	started  bool // a first play has happened
	lastPlay card.Combination
	lastBy   PlayerNum
	winners  []PlayerNum
}

// New shuffles a fresh deck with rng, deals 13 cards to each seat and
// hands the turn to whoever holds the lowest card. A full-deck deal
// always places it somewhere; anything else is a programmer error.
func New(rng *rand.Rand) *Game {
	deck := card.Deck()
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	g := &Game{}
	for p := PlayerNum(1); p <= NumPlayers; p++ {
		hand, err := card.NewCards(deck[(p-1)*13 : p*13])
		if err != nil {
			panic(fmt.Sprintf("deal produced duplicates: %v", err))
		}
		g.hands[p] = hand
		if hand.Contains(card.Lowest) {
			g.turn = p
		}
	}
	if g.turn == 0 {
		panic("no player holds the lowest card after a full deal")
	}
	return g
}

// Hand returns seat p's current cards.
func (g *Game) Hand(p PlayerNum) card.Cards { return g.hands[p] }

// Winners lists the players who have emptied their hand, first out
// first. At most three; the fourth place is implied.
func (g *Game) Winners() []PlayerNum { return g.winners }

// LastPlay reports the last non-pass combination and who played it.
func (g *Game) LastPlay() (card.Combination, PlayerNum, bool) {
	return g.lastPlay, g.lastBy, g.started
}

func (g *Game) finished(p PlayerNum) bool { return len(g.hands[p]) == 0 }

// Turn reports whose move it is and under what rule.
func (g *Game) Turn() Turn {
	if len(g.winners) >= 3 {
		return Turn{Kind: TurnEnd}
	}
	if !g.started {
		return Turn{Kind: TurnStart, Player: g.turn}
	}
	if g.lastBy == g.turn || g.finished(g.lastBy) {
		return Turn{Kind: TurnAny, Player: g.turn}
	}
	return Turn{Kind: TurnFollow, Player: g.turn}
}

// AttemptPlay applies the current player's cards (empty for a pass).
// It validates ownership, classification and the turn-kind rule in
// that order, then moves the cards to the discard record, updates the
// last-play record for a non-pass, records a finisher if the hand
// emptied, and advances the turn. The result reports whether the
// play emptied the hand.
func (g *Game) AttemptPlay(cs card.Cards) (bool, error) {
	turn := g.Turn()
	if turn.Kind == TurnEnd {
		return false, errors.New("game has ended")
	}
	p := turn.Player

	if !g.hands[p].ContainsAll(cs) {
		return false, ErrNotInHand
	}

	var combo card.Combination
	if !cs.IsPass() {
		var err error
		combo, err = card.NewCombination(cs)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrIllegalCombination, err)
		}
	}

	switch turn.Kind {
	case TurnStart:
		if cs.IsPass() {
			return false, ErrPassForbidden
		}
		if !cs.Contains(card.Lowest) {
			return false, ErrMustStartWithLow
		}
	case TurnFollow:
		if !cs.IsPass() && !combo.Beats(g.lastPlay) {
			return false, ErrCannotFollow
		}
	case TurnAny:
		if cs.IsPass() {
			return false, ErrPassForbidden
		}
	}

	g.hands[p] = g.hands[p].Remove(cs)
	g.discards = append(g.discards, cs...)
	if !cs.IsPass() {
		g.started = true
		g.lastPlay = combo
		g.lastBy = p
	}

	emptied := g.finished(p)
	if emptied {
		g.winners = append(g.winners, p)
	}
	g.advance()
	return emptied, nil
}

// advance moves the turn to the next seat still holding cards,
// cyclically. Once three finishers exist the pointer stays put; Turn
// reports End from then on.
func (g *Game) advance() {
	if len(g.winners) >= 3 {
		return
	}
	for next := g.turn%NumPlayers + 1; ; next = next%NumPlayers + 1 {
		if !g.finished(next) {
			g.turn = next
			return
		}
	}
}
