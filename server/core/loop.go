package core

import (
	"log"
	"time"
)

type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	interval := time.Second / time.Duration(g.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[server] game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("[server] game loop stopped")
			return
		case <-ticker.C:
			g.server.Tick(interval.Seconds())
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}
