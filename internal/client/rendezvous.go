package client

import (
	"errors"
	"sync"

	"github.com/jpablo128/baraha/internal/card"
)

var (
	ErrNotYourTurn  = errors.New("it's not yet your turn")
	ErrAlreadyMoved = errors.New("a play is already pending")
)

// Rendezvous hands one pending "your move" request from the network
// side to the decision side and its answer back: a single-slot
// exchange, never a queue. At most one outstanding request and one
// outstanding answer exist at a time; waiters park on the condition
// until the counterpart signals. There is no timeout — a decision
// side that never answers stalls the session.
type Rendezvous struct {
	mu      sync.Mutex
	cond    *sync.Cond
	canPlay bool
	view    View
	cards   card.Cards
	have    bool
}

func NewRendezvous() *Rendezvous {
	r := &Rendezvous{}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// Pending reports whether a move is awaited and, if so, the view the
// decision should be made against.
func (r *Rendezvous) Pending() (View, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view, r.canPlay
}

// Offer supplies the answer. It fails when no move is awaited or one
// was already supplied.
func (r *Rendezvous) Offer(cs card.Cards) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.canPlay {
		return ErrNotYourTurn
	}
	if r.have {
		return ErrAlreadyMoved
	}
	r.cards = cs
	r.have = true
	r.cond.Broadcast()
	return nil
}

// Await opens the slot for v and blocks until the decision side
// offers cards. Called only by the network side.
func (r *Rendezvous) Await(v View) card.Cards {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view = v
	r.canPlay = true
	for !r.have {
		r.cond.Wait()
	}
	r.canPlay = false
	r.have = false
	return r.cards
}
