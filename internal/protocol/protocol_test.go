package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jpablo128/baraha/internal/card"
	"github.com/jpablo128/baraha/internal/game"
)

func cards(t *testing.T, s string) card.Cards {
	t.Helper()
	cs, err := card.ParseCards(s)
	require.NoError(t, err)
	return cs
}

func TestServerMessageWireForms(t *testing.T) {
	cases := []struct {
		name string
		msg  ServerMessage
		wire string
	}{
		{"you", You{Player: 3}, "U #3"},
		{"deal", Dealt{Hand: cards(t, "3C 4D TS")}, "D 3C 4D TS"},
		{"invalid", Invalid{Reason: "cards not in hand"}, "? cards not in hand"},
		{"notice", Notice{Text: "#2 didn't play properly."}, "! #2 didn't play properly."},
		{"play", Played{Player: 1, Cards: cards(t, "7H 7D")}, "P #1 7H 7D"},
		{"pass", Played{Player: 4, Cards: cards(t, "")}, "P #4"},
		{"turn start", TurnMsg{Turn: game.Turn{Kind: game.TurnStart, Player: 2}}, "T #2 S"},
		{"turn follow", TurnMsg{Turn: game.Turn{Kind: game.TurnFollow, Player: 3}}, "T #3 F"},
		{"turn any", TurnMsg{Turn: game.Turn{Kind: game.TurnAny, Player: 1}}, "T #1 A"},
		{"won", Won{Player: 2}, "W #2"},
		{"ended", Ended{Winners: []game.PlayerNum{2, 4, 1}}, "E #2 #4 #1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.wire, tc.msg.Encode())

			parsed, err := ParseServer(tc.wire)
			require.NoError(t, err)
			require.Equal(t, tc.msg, parsed)
		})
	}
}

func TestParseServerRejects(t *testing.T) {
	cases := []string{
		"",
		"X #1",
		"U #5",
		"U 1",
		"T #1",
		"T #1 Q",
		"P #1 ZZ",
		"D 3C 3C",
	}
	for _, line := range cases {
		t.Run(line, func(t *testing.T) {
			_, err := ParseServer(line)
			require.Error(t, err)
		})
	}
}

func TestClientMessageWireForms(t *testing.T) {
	cases := []struct {
		name string
		msg  ClientMessage
		wire string
	}{
		{"ready", Ready{}, "G"},
		{"play", Play{Cards: cards(t, "3C 3D 3H")}, "P 3C 3H 3D"},
		{"pass", Play{Cards: cards(t, "")}, "P"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.wire, tc.msg.Encode())

			parsed, err := ParseClient(tc.wire)
			require.NoError(t, err)
			require.Equal(t, tc.msg, parsed)
		})
	}
}

func TestParseClientRejects(t *testing.T) {
	for _, line := range []string{"", "hello", "P 3C 3C", "P 3"} {
		t.Run(line, func(t *testing.T) {
			_, err := ParseClient(line)
			require.Error(t, err)
		})
	}
}
