package client

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/jpablo128/baraha/internal/card"
	"github.com/jpablo128/baraha/internal/game"
	"github.com/jpablo128/baraha/internal/protocol"
)

func suitGlyph(c card.Card) string {
	switch c.Suit() {
	case 'C':
		return "♣"
	case 'S':
		return "♠"
	case 'H':
		return "♥"
	case 'D':
		return "♦"
	}
	return "?"
}

func renderCard(c card.Card) string {
	s := string(c.Rank()) + suitGlyph(c)
	if c.Suit() == 'H' || c.Suit() == 'D' {
		return pterm.LightRed(s)
	}
	return pterm.LightWhite(s)
}

func renderCards(cs card.Cards) string {
	if cs.IsPass() {
		return pterm.Gray("pass")
	}
	tokens := make([]string, len(cs))
	for i, c := range cs {
		tokens[i] = renderCard(c)
	}
	return strings.Join(tokens, " ")
}

func turnVerb(k game.TurnKind) string {
	switch k {
	case game.TurnStart:
		return "opens"
	case game.TurnFollow:
		return "must follow"
	case game.TurnAny:
		return "leads"
	}
	return "?"
}

// renderServer prints one server message for the interactive client.
func renderServer(msg protocol.ServerMessage, me game.PlayerNum) {
	switch m := msg.(type) {
	case protocol.You:
		pterm.Info.Printfln("You are player #%d.", m.Player)
	case protocol.Dealt:
		pterm.DefaultBox.WithTitle("Your hand").Println(renderCards(m.Hand))
	case protocol.Invalid:
		pterm.Warning.Printfln("Rejected: %s", m.Reason)
	case protocol.Notice:
		pterm.Error.Println(m.Text)
	case protocol.Played:
		who := pterm.Sprintf("#%d", m.Player)
		if m.Player == me {
			who = "You"
		}
		pterm.Printfln("%s played: %s", who, renderCards(m.Cards))
	case protocol.TurnMsg:
		if m.Turn.Player == me {
			pterm.Success.Printfln("Your turn (%s).", turnVerb(m.Turn.Kind))
		} else {
			pterm.Printfln("#%d %s.", m.Turn.Player, turnVerb(m.Turn.Kind))
		}
	case protocol.Won:
		pterm.Success.Printfln("#%d emptied their hand!", m.Player)
	case protocol.Ended:
		tokens := make([]string, len(m.Winners))
		for i, w := range m.Winners {
			tokens[i] = pterm.Sprintf("#%d", w)
		}
		pterm.DefaultBox.WithTitle("Final placement").
			Println(strings.Join(tokens, "  "))
	}
}

// renderPrompt shows the state a decision is made against.
func renderPrompt(v View) {
	pterm.DefaultBox.WithTitle("Your hand").Println(renderCards(v.Hand))
	if v.Turn.Kind == game.TurnFollow && v.HasLast {
		pterm.Printfln("To beat: %s (#%d)", renderCards(v.Last.Cards()), v.LastBy)
	}
	pterm.Printfln("Enter cards to play, nothing to pass, or %s for suggestions.",
		pterm.LightCyan("hint"))
}

// renderHints lists legal plays, weakest first.
func renderHints(v View) {
	hints := Hints(v)
	if len(hints) == 0 {
		pterm.Println("Nothing beats the table; press enter to pass.")
		return
	}
	for i, h := range hints {
		pterm.Printfln("%2d. %s (%s)", i+1, renderCards(h.Cards()), h.Kind())
	}
}
