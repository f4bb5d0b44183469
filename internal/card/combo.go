package card

import (
	"errors"
	"fmt"
)

var (
	ErrWrongSize = errors.New("combination must have 1, 2, 3 or 5 cards")
	ErrNoMatch   = errors.New("cards do not form a combination")
)

// Kind classifies a combination. Five-card kinds are listed weakest
// first; their order is baked into the rank value.
type Kind int

const (
	Pass Kind = iota
	Single
	Pair
	Triple
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

func (k Kind) String() string {
	switch k {
	case Pass:
		return "pass"
	case Single:
		return "single"
	case Pair:
		return "pair"
	case Triple:
		return "triple"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case Quads:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	}
	return "unknown"
}

// fiveBase spaces the five-card kinds so any straight flush outranks
// any quads, any quads any full house, and so on. Tie values stay
// well below the spacing.
const fiveBase = 1000

// Combination is a classified, immutable set of cards. The rank value
// is computed once at construction; follow-legality compares it only
// between combinations of equal size.
type Combination struct {
	cards Cards
	kind  Kind
	value int
}

// NewCombination classifies cs. The empty set is the pass
// combination; sizes other than 0, 1, 2, 3 and 5 are rejected, as is
// any set matching no named pattern.
func NewCombination(cs Cards) (Combination, error) {
	kind, value, err := classify(cs)
	if err != nil {
		return Combination{}, err
	}
	return Combination{cards: cs, kind: kind, value: value}, nil
}

// ParseCombination reads a space-separated card list and classifies it.
func ParseCombination(s string) (Combination, error) {
	cs, err := ParseCards(s)
	if err != nil {
		return Combination{}, err
	}
	return NewCombination(cs)
}

func (c Combination) Cards() Cards { return c.cards }
func (c Combination) Kind() Kind   { return c.kind }
func (c Combination) Value() int   { return c.value }
func (c Combination) Size() int    { return len(c.cards) }
func (c Combination) IsPass() bool { return c.kind == Pass }

func (c Combination) String() string {
	if c.IsPass() {
		return "pass"
	}
	return c.cards.String()
}

// Beats reports whether c may follow prev: equal cardinality and a
// strictly greater rank value. Mismatched cardinalities never beat.
func (c Combination) Beats(prev Combination) bool {
	return c.Size() == prev.Size() && c.value > prev.value
}

func classify(cs Cards) (Kind, int, error) {
	switch len(cs) {
	case 0:
		return Pass, 0, nil
	case 1:
		return Single, cs[0].Value(), nil
	case 2, 3:
		for _, c := range cs[1:] {
			if c.Rank() != cs[0].Rank() {
				return 0, 0, fmt.Errorf("%w: ranks differ", ErrNoMatch)
			}
		}
		// cs is sorted, so the last card is the highest.
		value := cs[len(cs)-1].Value()
		if len(cs) == 2 {
			return Pair, value, nil
		}
		return Triple, value, nil
	case 5:
		return classifyFive(cs)
	default:
		return 0, 0, fmt.Errorf("%w: got %d", ErrWrongSize, len(cs))
	}
}

func classifyFive(cs Cards) (Kind, int, error) {
	straight, runTie := straightTie(cs)
	flush := true
	for _, c := range cs[1:] {
		if c.Suit() != cs[0].Suit() {
			flush = false
			break
		}
	}

	switch {
	case straight && flush:
		return StraightFlush, 4*fiveBase + runTie, nil
	case quadRank(cs) >= 0:
		return Quads, 3*fiveBase + quadRank(cs), nil
	case fullHouseRank(cs) >= 0:
		return FullHouse, 2*fiveBase + fullHouseRank(cs), nil
	case flush:
		// Suit dominates, high rank breaks ties within a suit.
		return Flush, 1*fiveBase + cs[0].SuitIndex()*13 + cs[len(cs)-1].RankIndex(), nil
	case straight:
		return Straight, 0*fiveBase + runTie, nil
	}
	return 0, 0, fmt.Errorf("%w: no five-card pattern", ErrNoMatch)
}

// straightTie detects a five-card run. Both rank remappings are tried
// for every candidate: the plain game order (3 lowest, 2 highest) and
// the ace-low order where A and 2 anchor below the 3, which admits
// the wrap runs A-2-3-4-5 and 2-3-4-5-6. The tie value is taken from
// the run's top card under the matching remapping, the higher one
// when both match.
func straightTie(cs Cards) (bool, int) {
	tie, ok := -1, false
	for _, remap := range []func(int) int{
		func(i int) int { return i },
		func(i int) int {
			if i >= 11 { // A and 2 drop below the 3
				return i - 13
			}
			return i
		},
	} {
		t, match := runTop(cs, remap)
		if match && t > tie {
			tie, ok = t, true
		}
	}
	return ok, tie
}

// runTop reports whether the remapped rank positions are consecutive
// and, if so, the tie value of the card at the run's top.
func runTop(cs Cards, remap func(int) int) (int, bool) {
	top, topAt := remap(cs[0].RankIndex()), 0
	for i, c := range cs {
		if m := remap(c.RankIndex()); m > top {
			top, topAt = m, i
		}
	}
	seen := 0
	for _, c := range cs {
		d := top - remap(c.RankIndex())
		if d < 0 || d > 4 {
			return 0, false
		}
		if seen&(1<<d) != 0 {
			return 0, false // duplicate rank
		}
		seen |= 1 << d
	}
	if seen != 0x1f {
		return 0, false
	}
	return top*4 + cs[topAt].SuitIndex(), true
}

// quadRank returns the rank index of a four-of-a-kind, or -1.
func quadRank(cs Cards) int {
	for _, n := range rankCounts(cs) {
		if n.count == 4 {
			return n.rank
		}
	}
	return -1
}

// fullHouseRank returns the rank index of the triple in a full house,
// or -1.
func fullHouseRank(cs Cards) int {
	counts := rankCounts(cs)
	if len(counts) != 2 {
		return -1
	}
	for _, n := range counts {
		if n.count == 3 {
			return n.rank
		}
	}
	return -1
}

type rankCount struct {
	rank  int
	count int
}

func rankCounts(cs Cards) []rankCount {
	var out []rankCount
outer:
	for _, c := range cs {
		for i := range out {
			if out[i].rank == c.RankIndex() {
				out[i].count++
				continue outer
			}
		}
		out = append(out, rankCount{rank: c.RankIndex(), count: 1})
	}
	return out
}
