// Package client connects one seat to a dealer: the protocol state
// machine decides when to read the socket and when to demand a local
// decision. Two lines of control exist per interactive client — the
// network loop and the terminal reader — meeting at a single-slot
// rendezvous.
package client

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/jpablo128/baraha/internal/card"
	"github.com/jpablo128/baraha/internal/protocol"
)

// Decider supplies the cards (empty for a pass) when it is this
// client's turn.
type Decider func(View) card.Cards

// Play runs an interactive terminal session against the dealer at addr.
func Play(addr string) error {
	r := NewRendezvous()
	go interact(r)
	return run(addr, func(v View) card.Cards {
		renderPrompt(v)
		return r.Await(v)
	}, true)
}

// Bot runs a scripted session: it always plays its first legal hint.
func Bot(addr string) error {
	return run(addr, Greedy, false)
}

// interact is the decision side: it owns stdin and answers the
// rendezvous. It must not answer before being asked.
func interact(r *Rendezvous) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		v, ok := r.Pending()
		if !ok {
			pterm.Println("It's not yet your turn.")
			continue
		}
		if line == "hint" || line == "h" {
			renderHints(v)
			continue
		}

		cs, err := card.ParseCards(line)
		if err != nil {
			pterm.Warning.Printfln("Invalid cards: %v", err)
			continue
		}
		if err := r.Offer(cs); err != nil {
			pterm.Warning.Println(err)
		}
	}
}

// run is the network side: read server lines while the machine wants
// them, hand off to the decider on our turn, write whatever the
// machine answers.
func run(addr string, decide Decider, render bool) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	reader := bufio.NewReader(conn)
	p := NewPlayer()

	// Prime the machine; the first real step reads the seat number.
	out, err := p.Actuate(nil, nil)
	if err != nil {
		return err
	}
	for {
		if out != nil {
			if _, err := fmt.Fprintf(conn, "%s\r\n", out.Encode()); err != nil {
				return fmt.Errorf("write: %w", err)
			}
		}

		switch p.Status() {
		case StatusEnd:
			return nil

		case StatusServerInput:
			raw, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read: %w", err)
			}
			msg, err := protocol.ParseServer(strings.TrimRight(raw, "\r\n"))
			if err != nil {
				return fmt.Errorf("invalid server line: %w", err)
			}
			if render {
				renderServer(msg, p.View().Num)
			}
			out, err = p.Actuate(msg, nil)
			if err != nil {
				return err
			}

		case StatusUserInput:
			cs := decide(p.View())
			out, err = p.Actuate(nil, &cs)
			if err != nil {
				return err
			}
		}
	}
}
