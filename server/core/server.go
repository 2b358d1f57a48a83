package core

import (
	"fmt"
	"log"
	"sync"

	cfg "github.com/automoto/lazertag/config"
	"github.com/automoto/lazertag/components"
	"github.com/automoto/lazertag/shared/leveldata"
	"github.com/automoto/lazertag/shared/messages"
	"github.com/automoto/lazertag/shared/netcomponents"
	"github.com/automoto/lazertag/shared/netconfig"
	"github.com/automoto/lazertag/systems"
	"github.com/automoto/lazertag/systems/factory"
	"github.com/google/uuid"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configure a Server. Zero values fall back to the config package.
type Options struct {
	Name       string
	Version    string // required client version, empty accepts any
	TickRate   int
	MaxPlayers int
	Arena      *leveldata.Arena
	ConfigPath string // YAML tuning file watched for changes
	Replicator Replicator
}

// Server manages the game state and client connections
type Server struct {
	world      donburi.World
	sim        *ecs.ECS
	loop       *GameLoop
	transport  *transports.WsServerTransport
	replicator Replicator
	reloader   *reloader

	name       string
	version    string
	tickRate   int
	maxPlayers int
	arena      *leveldata.Arena
	gameState  donburi.Entity
	nextSpawn  int

	// Router callbacks run on transport goroutines; they only queue commands.
	mu       sync.Mutex
	commands []func()
	sessions map[string]*session // by peer id
	tokens   map[string]string   // reconnect token -> participant id

	outbox []any // events gathered during a tick, loop goroutine only
}

// NewServer creates a new game server
func NewServer(opts Options) (*Server, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = cfg.Server.TickRate
	}
	if opts.MaxPlayers <= 0 {
		opts.MaxPlayers = cfg.Server.MaxPlayers
	}
	if opts.Arena == nil {
		opts.Arena = DefaultArena()
	}

	world := donburi.NewWorld()
	if opts.Replicator == nil {
		opts.Replicator = NewNecsReplicator(world)
	}

	s := &Server{
		world:      world,
		sim:        systems.NewSimulation(world),
		replicator: opts.Replicator,
		name:       opts.Name,
		version:    opts.Version,
		tickRate:   opts.TickRate,
		maxPlayers: opts.MaxPlayers,
		arena:      opts.Arena,
		sessions:   make(map[string]*session),
		tokens:     make(map[string]string),
	}
	s.loop = NewGameLoop(s, opts.TickRate)

	if opts.ConfigPath != "" {
		r, err := newReloader(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		s.reloader = r
	}

	factory.CreateClock(s.sim)
	factory.CreateArena(s.sim, s.arena)

	state := s.world.Entry(s.world.Create(netcomponents.NetGameState))
	netcomponents.NetGameState.SetValue(state, netcomponents.NetGameStateData{
		Arena: s.arena.Name,
		Tags:  make(map[uint]int),
	})
	s.gameState = state.Entity()
	if err := s.replicator.TrackGameState(s.world, &s.gameState); err != nil {
		return nil, fmt.Errorf("sync game state: %w", err)
	}

	s.subscribeEvents()

	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	s.setupRouterCallbacks()

	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
	if s.reloader != nil {
		s.reloader.Close()
	}
}

func (s *Server) setupRouterCallbacks() {
	// Handle new connections
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	// Handle disconnections
	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoinRequest(client, req)
	})

	// Handle player input messages
	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.onPlayerInput(client, input)
	})

	// Handle errors
	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) enqueue(cmd func()) {
	s.mu.Lock()
	s.commands = append(s.commands, cmd)
	s.mu.Unlock()
}

// ProcessCommands runs everything the router callbacks queued since the
// last tick, in arrival order, on the loop goroutine.
func (s *Server) ProcessCommands() {
	s.mu.Lock()
	cmds := s.commands
	s.commands = nil
	s.mu.Unlock()

	for _, cmd := range cmds {
		cmd()
	}
}

func (s *Server) onConnect(peer Peer) {
	log.Printf("[server] client connected: %s", peer.Id())
	s.mu.Lock()
	s.sessions[peer.Id()] = &session{peer: peer}
	s.mu.Unlock()
}

func (s *Server) onDisconnect(peer Peer, err error) {
	if err != nil {
		log.Printf("[server] client %s disconnected with error: %v", peer.Id(), err)
	} else {
		log.Printf("[server] client %s disconnected", peer.Id())
	}
	s.enqueue(func() { s.leave(peer) })
}

func (s *Server) onJoinRequest(peer Peer, req messages.JoinRequest) {
	s.enqueue(func() { s.join(peer, req) })
}

func (s *Server) onPlayerInput(peer Peer, input messages.PlayerInput) {
	s.enqueue(func() { s.applyInput(peer, input) })
}

func (s *Server) reject(peer Peer, reason string) {
	log.Printf("[server] rejecting %s: %s", peer.Id(), reason)
	if err := peer.SendMessage(messages.JoinRejected{Reason: reason}); err != nil {
		log.Printf("[server] send reject to %s: %v", peer.Id(), err)
	}
}

func (s *Server) join(peer Peer, req messages.JoinRequest) {
	if s.version != "" && req.Version != s.version {
		s.reject(peer, fmt.Sprintf("version mismatch: server requires %s", s.version))
		return
	}

	s.mu.Lock()
	sess, ok := s.sessions[peer.Id()]
	if !ok {
		sess = &session{peer: peer}
		s.sessions[peer.Id()] = sess
	}
	alreadyJoined := sess.joined
	full := s.joinedCountLocked() >= s.maxPlayers
	s.mu.Unlock()

	if alreadyJoined {
		return
	}
	if full {
		s.reject(peer, "server full")
		return
	}

	participant, token := s.claimIdentity(req.ReconnectToken)

	spawn := s.arena.Spawn(s.nextSpawn)
	s.nextSpawn++

	entry := factory.CreatePlayer(s.sim, factory.PlayerOptions{
		Owner:     participant,
		Name:      req.PlayerName,
		Authority: netconfig.AuthorityLocal,
		Spawn:     spawn,
	}, netcomponents.NetTransform, netcomponents.NetVelocity, netcomponents.NetPlayerState)
	entity := entry.Entity()
	systems.SyncNetComponents(s.sim)

	if err := s.replicator.TrackPlayer(s.world, &entity); err != nil {
		log.Printf("[server] failed to set up network sync for player: %v", err)
		s.removePlayer(entity)
		s.reject(peer, "internal error")
		return
	}

	s.mu.Lock()
	sess.participant = participant
	sess.token = token
	sess.name = req.PlayerName
	sess.entity = entity
	sess.joined = true
	s.mu.Unlock()

	accepted := messages.JoinAccepted{
		NetworkID:      esync.NetworkId(s.networkID(entity)),
		ParticipantID:  participant,
		ReconnectToken: token,
		ServerName:     s.name,
		Arena:          s.arena.Name,
		TickRate:       s.tickRate,
	}
	if err := peer.SendMessage(accepted); err != nil {
		log.Printf("[server] send join accepted to %s: %v", peer.Id(), err)
	}
	log.Printf("[server] %s joined as %s (%s)", peer.Id(), req.PlayerName, participant)
}

// claimIdentity reuses the participant behind a known reconnect token when
// that participant is not currently in the game.
func (s *Server) claimIdentity(token string) (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.tokens[token]; ok && !s.participantActiveLocked(id) {
		return id, token
	}

	id := uuid.NewString()
	token = uuid.NewString()
	s.tokens[token] = id
	return id, token
}

func (s *Server) leave(peer Peer) {
	s.mu.Lock()
	sess, ok := s.sessions[peer.Id()]
	delete(s.sessions, peer.Id())
	s.mu.Unlock()

	if !ok || !sess.joined {
		return
	}

	netID := s.networkID(sess.entity)
	s.removePlayer(sess.entity)
	s.broadcast(messages.DespawnEvent{NetworkID: netID})
	log.Printf("[server] player entity removed for client %s", peer.Id())
}

func (s *Server) removePlayer(entity donburi.Entity) {
	if !s.world.Valid(entity) {
		return
	}
	entry := s.world.Entry(entity)
	if space := factory.SpaceWorld(s.world); space != nil && entry.HasComponent(components.Body) {
		space.Remove(components.Body.Get(entry).Body)
	}
	s.world.Remove(entity)
}

// applyInput routes input to the sender's own player. There is no way to
// address another player's entity.
func (s *Server) applyInput(peer Peer, input messages.PlayerInput) {
	s.mu.Lock()
	sess, ok := s.sessions[peer.Id()]
	s.mu.Unlock()

	if !ok || !sess.joined || !s.world.Valid(sess.entity) {
		return
	}
	systems.ApplyInput(s.world.Entry(sess.entity), input)
}

// Tick advances the simulation by dt seconds and replicates the result.
func (s *Server) Tick(dt float64) {
	if s.reloader != nil {
		s.reloader.Poll()
	}

	s.ProcessCommands()

	systems.Advance(s.world, dt)
	s.sim.Update()

	s.updateGameState()
	s.flushEvents()

	if err := s.replicator.Sync(); err != nil {
		log.Printf("[server] sync error: %v", err)
	}
}

func (s *Server) updateGameState() {
	if !s.world.Valid(s.gameState) {
		return
	}
	state := netcomponents.NetGameState.Get(s.world.Entry(s.gameState))
	state.Tick++
}

func (s *Server) networkID(entity donburi.Entity) uint {
	if !s.world.Valid(entity) {
		return 0
	}
	if nid := esync.GetNetworkId(s.world.Entry(entity)); nid != nil {
		return uint(*nid)
	}
	return 0
}

func (s *Server) joinedCountLocked() int {
	n := 0
	for _, sess := range s.sessions {
		if sess.joined {
			n++
		}
	}
	return n
}

func (s *Server) participantActiveLocked(id string) bool {
	for _, sess := range s.sessions {
		if sess.joined && sess.participant == id {
			return true
		}
	}
	return false
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of joined players
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.joinedCountLocked()
}

// PlayerEntity returns the entity a connection controls.
func (s *Server) PlayerEntity(peerID string) (donburi.Entity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[peerID]
	if !ok || !sess.joined {
		return donburi.Null, false
	}
	return sess.entity, true
}

// ArenaName is the name of the loaded arena.
func (s *Server) ArenaName() string {
	return s.arena.Name
}
