package card

import (
	"errors"
	"testing"
)

func mustCombo(t *testing.T, s string) Combination {
	t.Helper()
	combo, err := ParseCombination(s)
	if err != nil {
		t.Fatalf("ParseCombination(%q): %v", s, err)
	}
	return combo
}

func TestClassifyKinds(t *testing.T) {
	cases := []struct {
		name string
		in   string
		kind Kind
	}{
		{"pass", "", Pass},
		{"single", "7H", Single},
		{"pair", "7H 7D", Pair},
		{"triple", "7H 7D 7C", Triple},
		{"straight", "3C 4S 5H 6D 7C", Straight},
		{"ace high straight", "TC JS QH KD AC", Straight},
		{"ace low straight", "AC 2C 3D 4S 5H", Straight},
		{"two low straight", "2C 3D 4S 5H 6C", Straight},
		{"flush", "3H 5H 8H JH KH", Flush},
		{"full house", "7H 7D 7C 4S 4D", FullHouse},
		{"quads", "9H 9D 9C 9S 3C", Quads},
		{"straight flush", "3H 4H 5H 6H 7H", StraightFlush},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			combo := mustCombo(t, tc.in)
			if combo.Kind() != tc.kind {
				t.Fatalf("got %v, want %v", combo.Kind(), tc.kind)
			}
		})
	}
}

func TestClassifyRejections(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"four cards", "3C 4C 5C 6C", ErrWrongSize},
		{"six cards", "3C 4C 5C 6C 7C 8C", ErrWrongSize},
		{"mismatched pair", "3C 4C", ErrNoMatch},
		{"mismatched triple", "3C 3S 4C", ErrNoMatch},
		{"five random cards", "3C 5S 8H JD KC", ErrNoMatch},
		{"broken straight", "3C 4S 5H 6D 8C", ErrNoMatch},
		{"two pair", "3C 3S 4H 4D 5C", ErrNoMatch},
		{"wrap over the top", "QC KS AH 2D 3C", ErrNoMatch},
		{"ace both anchors", "KC AS 2H 3D 4C", ErrNoMatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCombination(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

// The rank value of a straight strictly increases with the run's high
// card, ace usable as low or high anchor.
func TestStraightMonotonicity(t *testing.T) {
	runs := []string{
		"AC 2C 3D 4S 5H", // ace low
		"2C 3D 4S 5H 6C", // two low
		"3C 4S 5H 6D 7C",
		"4C 5S 6H 7D 8C",
		"9C TS JH QD KC",
		"TC JS QH KD AC", // ace high
		"JC QS KH AD 2C", // two high
	}
	prev := -1
	for _, run := range runs {
		combo := mustCombo(t, run)
		if combo.Value() <= prev {
			t.Fatalf("straight %q value %d not above previous %d", run, combo.Value(), prev)
		}
		prev = combo.Value()
	}
}

// Flushes order by suit first, then by high card within the suit.
func TestFlushOrdering(t *testing.T) {
	lowClub := mustCombo(t, "3C 5C 7C 9C JC")
	highClub := mustCombo(t, "3C 5C 7C 9C KC")
	lowDiamond := mustCombo(t, "3D 4D 5D 7D 9D")

	if !highClub.Beats(lowClub) {
		t.Fatalf("higher top card within suit should win")
	}
	if !lowDiamond.Beats(highClub) {
		t.Fatalf("diamond flush should beat any club flush")
	}
}

func TestFiveCardKindPrecedence(t *testing.T) {
	straight := mustCombo(t, "JC QS KH AD 2C") // highest straight
	flush := mustCombo(t, "3C 5C 7C 9C JC")    // lowest-suit flush
	fullHouse := mustCombo(t, "3C 3S 3H 4D 4C")
	quads := mustCombo(t, "3C 3S 3H 3D 4C")
	sflush := mustCombo(t, "3C 4C 5C 6C 7C")

	order := []Combination{straight, flush, fullHouse, quads, sflush}
	for i := 1; i < len(order); i++ {
		if !order[i].Beats(order[i-1]) {
			t.Fatalf("%v (%d) should beat %v (%d)",
				order[i].Kind(), order[i].Value(), order[i-1].Kind(), order[i-1].Value())
		}
	}
}

func TestFullHouseAndQuadTieBreak(t *testing.T) {
	// The repeated rank decides, not the kicker pair/card.
	low := mustCombo(t, "4C 4S 4H AD AC")
	high := mustCombo(t, "5C 5S 5H 3D 3C")
	if !high.Beats(low) {
		t.Fatalf("triple rank decides the full house")
	}

	lowQ := mustCombo(t, "4C 4S 4H 4D 2C")
	highQ := mustCombo(t, "5C 5S 5H 5D 3C")
	if !highQ.Beats(lowQ) {
		t.Fatalf("quad rank decides four of a kind")
	}
}

func TestPairTieBreakUsesSuit(t *testing.T) {
	low := mustCombo(t, "7C 7S")
	high := mustCombo(t, "7H 7D")
	if !high.Beats(low) {
		t.Fatalf("pair with the higher top suit should win")
	}
}

func TestBeatsRequiresEqualSize(t *testing.T) {
	single := mustCombo(t, "2D")
	pair := mustCombo(t, "3C 3S")
	if pair.Beats(single) || single.Beats(pair) {
		t.Fatalf("mismatched cardinalities never compare")
	}
	if single.Beats(single) {
		t.Fatalf("equal value must not beat itself")
	}
}

func TestTwoBeatsEverySingle(t *testing.T) {
	twoOfDiamonds := mustCombo(t, "2D")
	for _, c := range Deck() {
		if c.String() == "2D" {
			continue
		}
		combo := mustCombo(t, c.String())
		if !twoOfDiamonds.Beats(combo) {
			t.Fatalf("2D should beat %s", c)
		}
	}
}
