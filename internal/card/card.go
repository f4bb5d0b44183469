package card

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Ranks in game order: 3 is lowest, 2 is highest.
const Ranks = "3456789TJQKA2"

// Suits in tie-break order: club < spade < heart < diamond.
const Suits = "CSHD"

var (
	ErrWrongLength = errors.New("card token must be two characters")
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
	ErrDuplicate   = errors.New("duplicate card")
)

// Card is a single playing card. The zero value is not a valid card;
// construct via Parse or New.
type Card struct {
	rank byte
	suit byte
}

func New(rank, suit byte) (Card, error) {
	if strings.IndexByte(Ranks, rank) < 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, string(rank))
	}
	if strings.IndexByte(Suits, suit) < 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, string(suit))
	}
	return Card{rank: rank, suit: suit}, nil
}

// Parse reads a two-character token, rank symbol then suit symbol.
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrWrongLength, s)
	}
	return New(s[0], s[1])
}

func (c Card) Rank() byte { return c.rank }
func (c Card) Suit() byte { return c.suit }

// RankIndex is the rank's position in game order, 0 (three) .. 12 (two).
func (c Card) RankIndex() int { return strings.IndexByte(Ranks, c.rank) }

// SuitIndex is the suit's position in tie-break order, 0 (club) .. 3 (diamond).
func (c Card) SuitIndex() int { return strings.IndexByte(Suits, c.suit) }

// Value gives the card's place in the total order over all 52 cards.
func (c Card) Value() int { return c.RankIndex()*4 + c.SuitIndex() }

func (c Card) Less(o Card) bool { return c.Value() < o.Value() }

func (c Card) String() string { return string([]byte{c.rank, c.suit}) }

// Lowest is the single lowest card in the deck, the three of clubs.
// Whoever is dealt it opens the game.
var Lowest = Card{rank: '3', suit: 'C'}

// Deck returns all 52 cards in value order.
func Deck() []Card {
	d := make([]Card, 0, 52)
	for i := 0; i < len(Ranks); i++ {
		for j := 0; j < len(Suits); j++ {
			d = append(d, Card{rank: Ranks[i], suit: Suits[j]})
		}
	}
	return d
}

// Cards is a duplicate-free set of cards kept sorted by value.
type Cards []Card

// NewCards copies cs into a sorted set, rejecting duplicates.
func NewCards(cs []Card) (Cards, error) {
	out := make(Cards, len(cs))
	copy(out, cs)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	for i := 1; i < len(out); i++ {
		if out[i] == out[i-1] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, out[i])
		}
	}
	return out, nil
}

// ParseCards reads a space-separated list of card tokens. The empty
// string parses to the empty set (a pass).
func ParseCards(s string) (Cards, error) {
	fields := strings.Fields(s)
	cs := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return NewCards(cs)
}

func (cs Cards) String() string {
	tokens := make([]string, len(cs))
	for i, c := range cs {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}

// IsPass reports whether the set is empty.
func (cs Cards) IsPass() bool { return len(cs) == 0 }

// Contains reports whether c is in the set.
func (cs Cards) Contains(c Card) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every card of sub is in the set.
func (cs Cards) ContainsAll(sub Cards) bool {
	for _, c := range sub {
		if !cs.Contains(c) {
			return false
		}
	}
	return true
}

// Remove returns the set with every card of sub removed.
func (cs Cards) Remove(sub Cards) Cards {
	out := make(Cards, 0, len(cs))
	for _, c := range cs {
		if !sub.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}
