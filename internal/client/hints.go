package client

import (
	"sort"

	"github.com/jpablo128/baraha/internal/card"
	"github.com/jpablo128/baraha/internal/game"
)

// Hints enumerates the legal plays for v, weakest first: by size,
// then by rank value. A pass is never listed; whether it is allowed
// follows from the turn kind.
func Hints(v View) []card.Combination {
	var hints []card.Combination
	for _, combo := range candidates(v.Hand) {
		switch v.Turn.Kind {
		case game.TurnStart:
			if !combo.Cards().Contains(card.Lowest) {
				continue
			}
		case game.TurnFollow:
			if !combo.Beats(v.Last) {
				continue
			}
		case game.TurnAny:
			// anything goes
		default:
			return nil
		}
		hints = append(hints, combo)
	}
	sort.Slice(hints, func(i, j int) bool {
		if hints[i].Size() != hints[j].Size() {
			return hints[i].Size() < hints[j].Size()
		}
		return hints[i].Value() < hints[j].Value()
	})
	return hints
}

// candidates is every classifiable combination in the hand: all
// singles, same-rank pairs and triples, and every 5-card subset that
// classifies. A 13-card hand has 1287 such subsets, cheap enough to
// try them all.
func candidates(hand card.Cards) []card.Combination {
	var out []card.Combination

	add := func(cs []card.Card) {
		set, err := card.NewCards(cs)
		if err != nil {
			return
		}
		combo, err := card.NewCombination(set)
		if err != nil {
			return
		}
		out = append(out, combo)
	}

	for _, c := range hand {
		add([]card.Card{c})
	}

	byRank := map[byte][]card.Card{}
	for _, c := range hand {
		byRank[c.Rank()] = append(byRank[c.Rank()], c)
	}
	for _, group := range byRank {
		forEachSubset(group, 2, add)
		forEachSubset(group, 3, add)
	}

	forEachSubset(hand, 5, add)
	return out
}

// forEachSubset visits every k-subset of cs.
func forEachSubset(cs []card.Card, k int, visit func([]card.Card)) {
	if len(cs) < k {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		pick := make([]card.Card, k)
		for i, j := range idx {
			pick[i] = cs[j]
		}
		visit(pick)

		i := k - 1
		for i >= 0 && idx[i] == len(cs)-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Greedy picks the first hint, or a pass when following with nothing
// that beats the table. On a start or free turn the hand itself
// guarantees at least one hint.
func Greedy(v View) card.Cards {
	if hints := Hints(v); len(hints) > 0 {
		return hints[0].Cards()
	}
	return nil
}
