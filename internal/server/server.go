// Package server is the transport collaborator: it owns the sockets
// and feeds the dealer machine one line at a time. Exactly one socket
// is read from at any moment — the protocol has a single active input
// source, so there is nothing to read concurrently.
package server

import (
	"bufio"
	"fmt"
	"math/rand"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/jpablo128/baraha/internal/dealer"
	"github.com/jpablo128/baraha/internal/game"
)

// Server hosts one session for exactly four players.
type Server struct {
	log *zap.Logger
	rng *rand.Rand
}

func New(log *zap.Logger) *Server {
	return &Server{
		log: log,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand overrides the deal shuffle source.
func (s *Server) WithRand(rng *rand.Rand) *Server {
	s.rng = rng
	return s
}

// Host listens on addr, accepts four connections and runs the session
// to completion. Any transport failure is fatal to the session.
func (s *Server) Host(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()
	return s.Serve(ln)
}

// Serve accepts four connections from ln and runs the session. Split
// from Host so tests can listen on an ephemeral port first.
func (s *Server) Serve(ln net.Listener) error {
	s.log.Info("waiting for players", zap.String("addr", ln.Addr().String()))

	var conns [game.NumPlayers]net.Conn
	defer func() {
		for _, c := range conns {
			if c != nil {
				c.Close()
			}
		}
	}()
	for i := 0; i < game.NumPlayers; i++ {
		conn, err := ln.Accept()
		if err != nil {
			return fmt.Errorf("accept: %w", err)
		}
		conns[i] = conn
		s.log.Info("player connected",
			zap.Int("seat", i+1),
			zap.String("remote", conn.RemoteAddr().String()))
	}

	s.log.Info("session starting")
	return s.run(conns)
}

// run is the single-threaded session loop: read one line from the one
// required source, step the machine, write the addressed outputs.
func (s *Server) run(conns [game.NumPlayers]net.Conn) error {
	var readers [game.NumPlayers]*bufio.Reader
	for i, c := range conns {
		readers[i] = bufio.NewReader(c)
	}

	m := dealer.New(s.rng)
	for {
		var line string
		if p, ok := m.AwaitingInput(); ok {
			raw, err := readers[p-1].ReadString('\n')
			if err != nil {
				return fmt.Errorf("read from #%d: %w", p, err)
			}
			line = trimLine(raw)
			s.log.Debug("recv", zap.Int("player", int(p)), zap.String("line", line))
		}

		for _, send := range m.Step(line) {
			wire := send.Msg.Encode()
			for _, p := range recipients(send.To) {
				if _, err := fmt.Fprintf(conns[p-1], "%s\r\n", wire); err != nil {
					return fmt.Errorf("write to #%d: %w", p, err)
				}
			}
			s.log.Debug("send", zap.Int("to", int(send.To)), zap.String("line", wire))
		}

		if m.Done() {
			s.log.Info("session ended")
			return nil
		}
	}
}

func recipients(to game.PlayerNum) []game.PlayerNum {
	if to != dealer.Everyone {
		return []game.PlayerNum{to}
	}
	ps := make([]game.PlayerNum, game.NumPlayers)
	for i := range ps {
		ps[i] = game.PlayerNum(i + 1)
	}
	return ps
}

func trimLine(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
