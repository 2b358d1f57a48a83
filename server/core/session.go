package core

import "github.com/yohamta/donburi"

// Peer is one client connection. *router.NetworkClient satisfies it.
type Peer interface {
	Id() string
	SendMessage(msg any) error
}

// session is a connection and, once joined, the player it controls.
type session struct {
	peer        Peer
	participant string
	token       string
	name        string
	entity      donburi.Entity
	joined      bool
}
