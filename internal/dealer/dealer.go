// Package dealer drives one game session through the wire protocol.
// The machine consumes exactly one input line per step and yields the
// addressed output lines that step produced; the transport decides
// nothing. Every transition is a pure function of the current state
// and one line, which is what makes the machine testable without a
// socket in sight.
package dealer

import (
	"fmt"
	"math/rand"

	"github.com/jpablo128/baraha/internal/game"
	"github.com/jpablo128/baraha/internal/protocol"
)

// Everyone addresses a Send to all four players.
const Everyone game.PlayerNum = 0

// Send is one output line and its destination.
type Send struct {
	To  game.PlayerNum
	Msg protocol.ServerMessage
}

func to(p game.PlayerNum, m protocol.ServerMessage) Send {
	return Send{To: p, Msg: m}
}

func all(m protocol.ServerMessage) Send {
	return Send{To: Everyone, Msg: m}
}

type phase int

const (
	phaseStart phase = iota
	phaseWait
	phaseDeal
	phasePlay
	phaseEnd
	phaseError
)

// Machine is the dealer session state machine:
//
//	Start -> Wait(1..4) -> Deal -> Play -> {End | Error}
//
// Start and Deal are internal transitions consuming no input; the
// server steps the machine with an empty line whenever AwaitingInput
// reports no required source.
type Machine struct {
	phase phase
	ready game.PlayerNum // lobby: whose ready signal is awaited
	g     *game.Game
	rng   *rand.Rand
}

func New(rng *rand.Rand) *Machine {
	return &Machine{phase: phaseStart, rng: rng}
}

// AwaitingInput reports the single player who must supply the next
// line, if any. While it reports none and Done is false the machine
// wants an internal step.
func (m *Machine) AwaitingInput() (game.PlayerNum, bool) {
	switch m.phase {
	case phaseWait:
		return m.ready, true
	case phasePlay:
		return m.g.Turn().Player, true
	}
	return 0, false
}

// Done reports whether the session has reached a terminal state.
func (m *Machine) Done() bool {
	return m.phase == phaseEnd || m.phase == phaseError
}

// Step feeds one line, attributed to the player AwaitingInput named,
// and returns the output lines in emission order.
func (m *Machine) Step(line string) []Send {
	switch m.phase {
	case phaseStart:
		m.phase, m.ready = phaseWait, 1
		return []Send{to(1, protocol.You{Player: 1})}

	case phaseWait:
		return m.stepWait(line)

	case phaseDeal:
		return m.stepDeal()

	case phasePlay:
		return m.stepPlay(line)
	}
	return nil
}

// stepWait accepts only the awaited player's ready signal. Anything
// else ends the session: the lobby has no retry semantics.
func (m *Machine) stepWait(line string) []Send {
	msg, err := protocol.ParseClient(line)
	if _, ok := msg.(protocol.Ready); err != nil || !ok {
		m.phase = phaseError
		return []Send{all(protocol.Notice{Text: fmt.Sprintf("#%d is not ready.", m.ready)})}
	}
	if m.ready == game.NumPlayers {
		m.phase = phaseDeal
		return nil
	}
	m.ready++
	return []Send{to(m.ready, protocol.You{Player: m.ready})}
}

// stepDeal starts the game and announces the opening turn.
func (m *Machine) stepDeal() []Send {
	m.g = game.New(m.rng)
	sends := make([]Send, 0, game.NumPlayers+1)
	for p := game.PlayerNum(1); p <= game.NumPlayers; p++ {
		sends = append(sends, to(p, protocol.Dealt{Hand: m.g.Hand(p)}))
	}
	sends = append(sends, all(protocol.TurnMsg{Turn: m.g.Turn()}))
	m.phase = phasePlay
	return sends
}

func (m *Machine) stepPlay(line string) []Send {
	cur := m.g.Turn().Player

	play, ok := func() (protocol.Play, bool) {
		msg, err := protocol.ParseClient(line)
		if err != nil {
			return protocol.Play{}, false
		}
		p, ok := msg.(protocol.Play)
		return p, ok
	}()
	if !ok {
		return m.misplay(cur, "invalid input")
	}

	emptied, err := m.g.AttemptPlay(play.Cards)
	if err != nil {
		return m.misplay(cur, err.Error())
	}

	sends := []Send{all(protocol.Played{Player: cur, Cards: play.Cards})}
	if emptied {
		sends = append(sends, all(protocol.Won{Player: cur}))
	}
	turn := m.g.Turn()
	if turn.Kind == game.TurnEnd {
		sends = append(sends, all(protocol.Ended{Winners: m.g.Winners()}))
		m.phase = phaseEnd
		return sends
	}
	return append(sends, all(protocol.TurnMsg{Turn: turn}))
}

// misplay keeps the state unchanged: the same player is asked again.
func (m *Machine) misplay(p game.PlayerNum, reason string) []Send {
	return []Send{
		to(p, protocol.Invalid{Reason: reason}),
		all(protocol.Notice{Text: fmt.Sprintf("#%d didn't play properly.", p)}),
	}
}
