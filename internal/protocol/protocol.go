// Package protocol maps dealer events and client intents onto the
// line-oriented wire format.
//
// Server to one client:
//
//	U #N        you are player N
//	D {C ..}    your dealt hand
//	? {message} your last input was invalid; retry
//
// Server to all clients:
//
//	! {message}     error notice
//	P #N {C ..}     player N played (empty list = pass)
//	T #N [S|F|A]    player N's turn: start, follow or any
//	W #N            player N emptied their hand
//	E #N #N #N      final placement, first to third
//
// Client to server:
//
//	G        ready
//	P {C ..} play these cards (none = pass)
package protocol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jpablo128/baraha/internal/card"
	"github.com/jpablo128/baraha/internal/game"
)

var (
	ErrBadLine      = errors.New("unparsable line")
	ErrBadPlayerNum = errors.New("invalid player number")
)

// ServerMessage is one line sent by the dealer.
type ServerMessage interface {
	isServerMessage()
	Encode() string
}

type You struct{ Player game.PlayerNum }

type Dealt struct{ Hand card.Cards }

// Invalid tells the offending player to retry.
type Invalid struct{ Reason string }

// Notice is the broadcast error line. In the lobby it is fatal; a
// misplay notice mid-game is display-only.
type Notice struct{ Text string }

type Played struct {
	Player game.PlayerNum
	Cards  card.Cards
}

type TurnMsg struct{ Turn game.Turn }

type Won struct{ Player game.PlayerNum }

type Ended struct{ Winners []game.PlayerNum }

func (You) isServerMessage()     {}
func (Dealt) isServerMessage()   {}
func (Invalid) isServerMessage() {}
func (Notice) isServerMessage()  {}
func (Played) isServerMessage()  {}
func (TurnMsg) isServerMessage() {}
func (Won) isServerMessage()     {}
func (Ended) isServerMessage()   {}

func (m You) Encode() string     { return fmt.Sprintf("U #%d", m.Player) }
func (m Dealt) Encode() string   { return "D " + m.Hand.String() }
func (m Invalid) Encode() string { return "? " + m.Reason }
func (m Notice) Encode() string  { return "! " + m.Text }

func (m Played) Encode() string {
	if m.Cards.IsPass() {
		return fmt.Sprintf("P #%d", m.Player)
	}
	return fmt.Sprintf("P #%d %s", m.Player, m.Cards)
}

func (m TurnMsg) Encode() string {
	var k byte
	switch m.Turn.Kind {
	case game.TurnStart:
		k = 'S'
	case game.TurnFollow:
		k = 'F'
	case game.TurnAny:
		k = 'A'
	default:
		panic("end turn has no wire form")
	}
	return fmt.Sprintf("T #%d %c", m.Turn.Player, k)
}

func (m Won) Encode() string { return fmt.Sprintf("W #%d", m.Player) }

func (m Ended) Encode() string {
	tokens := make([]string, len(m.Winners))
	for i, w := range m.Winners {
		tokens[i] = fmt.Sprintf("#%d", w)
	}
	return "E " + strings.Join(tokens, " ")
}

// ParseServer decodes one dealer line on the client side.
func ParseServer(line string) (ServerMessage, error) {
	verb, rest, _ := strings.Cut(line, " ")
	switch verb {
	case "U":
		p, err := parsePlayerNum(rest)
		if err != nil {
			return nil, err
		}
		return You{Player: p}, nil
	case "D":
		hand, err := card.ParseCards(rest)
		if err != nil {
			return nil, err
		}
		return Dealt{Hand: hand}, nil
	case "?":
		return Invalid{Reason: rest}, nil
	case "!":
		return Notice{Text: rest}, nil
	case "P":
		tok, cardsStr, _ := strings.Cut(rest, " ")
		p, err := parsePlayerNum(tok)
		if err != nil {
			return nil, err
		}
		cs, err := card.ParseCards(cardsStr)
		if err != nil {
			return nil, err
		}
		return Played{Player: p, Cards: cs}, nil
	case "T":
		fields := strings.Fields(rest)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrBadLine, line)
		}
		p, err := parsePlayerNum(fields[0])
		if err != nil {
			return nil, err
		}
		var kind game.TurnKind
		switch fields[1] {
		case "S":
			kind = game.TurnStart
		case "F":
			kind = game.TurnFollow
		case "A":
			kind = game.TurnAny
		default:
			return nil, fmt.Errorf("%w: turn kind %q", ErrBadLine, fields[1])
		}
		return TurnMsg{Turn: game.Turn{Kind: kind, Player: p}}, nil
	case "W":
		p, err := parsePlayerNum(rest)
		if err != nil {
			return nil, err
		}
		return Won{Player: p}, nil
	case "E":
		var winners []game.PlayerNum
		for _, tok := range strings.Fields(rest) {
			p, err := parsePlayerNum(tok)
			if err != nil {
				return nil, err
			}
			winners = append(winners, p)
		}
		return Ended{Winners: winners}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrBadLine, line)
}

// ClientMessage is one line sent by a client.
type ClientMessage interface {
	isClientMessage()
	Encode() string
}

type Ready struct{}

type Play struct{ Cards card.Cards }

func (Ready) isClientMessage() {}
func (Play) isClientMessage()  {}

func (Ready) Encode() string { return "G" }

func (m Play) Encode() string {
	if m.Cards.IsPass() {
		return "P"
	}
	return "P " + m.Cards.String()
}

// ParseClient decodes one client line on the dealer side.
func ParseClient(line string) (ClientMessage, error) {
	verb, rest, _ := strings.Cut(line, " ")
	switch verb {
	case "G":
		return Ready{}, nil
	case "P":
		cs, err := card.ParseCards(rest)
		if err != nil {
			return nil, err
		}
		return Play{Cards: cs}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrBadLine, line)
}

func parsePlayerNum(s string) (game.PlayerNum, error) {
	if len(s) == 2 && s[0] == '#' && s[1] >= '1' && s[1] <= '4' {
		return game.PlayerNum(s[1] - '0'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadPlayerNum, s)
}
