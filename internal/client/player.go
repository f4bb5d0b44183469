package client

import (
	"fmt"

	"github.com/jpablo128/baraha/internal/card"
	"github.com/jpablo128/baraha/internal/game"
	"github.com/jpablo128/baraha/internal/protocol"
)

// Status tells the run loop where the next input comes from.
type Status int

const (
	// StatusServerInput: block on the next server line.
	StatusServerInput Status = iota
	// StatusUserInput: demand a decision from the local side.
	StatusUserInput
	// StatusEnd: the session is over.
	StatusEnd
)

type pstate int

const (
	pStart pstate = iota
	pWaitForID
	pWaitForCards
	pInGame
	pMyTurn
	pMyPlay
	pEnd
)

// View is the slice of player state a decision needs.
type View struct {
	Num     game.PlayerNum
	Hand    card.Cards
	Turn    game.Turn
	Last    card.Combination
	LastBy  game.PlayerNum
	HasLast bool
}

// Player is the client-side protocol state machine. It tracks only
// what a decision needs: its own hand, the last non-pass play and the
// current turn. All rule enforcement stays with the dealer.
type Player struct {
	state   pstate
	num     game.PlayerNum
	hand    card.Cards
	turn    game.Turn
	last    card.Combination
	lastBy  game.PlayerNum
	hasLast bool
}

func NewPlayer() *Player { return &Player{state: pStart} }

func (p *Player) Status() Status {
	switch p.state {
	case pMyTurn:
		return StatusUserInput
	case pEnd:
		return StatusEnd
	}
	return StatusServerInput
}

func (p *Player) View() View {
	return View{
		Num:     p.num,
		Hand:    p.hand,
		Turn:    p.turn,
		Last:    p.last,
		LastBy:  p.lastBy,
		HasLast: p.hasLast,
	}
}

// Actuate advances the machine on one input: a server message when
// Status is StatusServerInput, locally chosen cards when it is
// StatusUserInput. It returns the line to send, if any.
func (p *Player) Actuate(sin protocol.ServerMessage, uin *card.Cards) (protocol.ClientMessage, error) {
	// Broadcast notices are display-only; they never move the machine.
	if _, ok := sin.(protocol.Notice); ok {
		return nil, nil
	}

	switch p.state {
	case pStart:
		p.state = pWaitForID
		return nil, nil

	case pWaitForID:
		you, ok := sin.(protocol.You)
		if !ok {
			return nil, fmt.Errorf("expected player number, got %T", sin)
		}
		p.num = you.Player
		p.state = pWaitForCards
		return protocol.Ready{}, nil

	case pWaitForCards:
		dealt, ok := sin.(protocol.Dealt)
		if !ok {
			return nil, fmt.Errorf("expected deal, got %T", sin)
		}
		p.hand = dealt.Hand
		p.state = pInGame
		return nil, nil

	case pInGame:
		switch msg := sin.(type) {
		case protocol.Played:
			p.observePlay(msg)
			return nil, nil
		case protocol.TurnMsg:
			p.turn = msg.Turn
			if msg.Turn.Player == p.num {
				p.state = pMyTurn
			}
			return nil, nil
		case protocol.Won:
			return nil, nil
		case protocol.Ended:
			p.state = pEnd
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected message in game: %T", sin)

	case pMyTurn:
		if uin == nil {
			return nil, fmt.Errorf("turn requires a decision")
		}
		p.state = pMyPlay
		return protocol.Play{Cards: *uin}, nil

	case pMyPlay:
		switch msg := sin.(type) {
		case protocol.Played:
			p.observePlay(msg)
			p.state = pInGame
			return nil, nil
		case protocol.Invalid:
			// Rejected; the dealer asks again.
			p.state = pMyTurn
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected message after play: %T", sin)
	}
	return nil, fmt.Errorf("actuate on ended session")
}

func (p *Player) observePlay(msg protocol.Played) {
	if msg.Player == p.num {
		p.hand = p.hand.Remove(msg.Cards)
	}
	if !msg.Cards.IsPass() {
		// The server only broadcasts legal plays.
		combo, err := card.NewCombination(msg.Cards)
		if err == nil {
			p.last = combo
			p.lastBy = msg.Player
			p.hasLast = true
		}
	}
}
