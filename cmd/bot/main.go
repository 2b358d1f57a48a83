package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	cfg "github.com/automoto/lazertag/config"
	"github.com/automoto/lazertag/network"
	"github.com/automoto/lazertag/shared/leveldata"
	"github.com/automoto/lazertag/shared/protocol"
	"github.com/automoto/lazertag/systems"
	"github.com/leap-fish/necs/esync"
)

func main() {
	addr := flag.String("addr", "localhost:7373", "Server address (ignored when -master is set)")
	masterURL := flag.String("master", "", "Master server URL to pick a server from")
	name := flag.String("name", "bot", "Player name")
	duration := flag.Duration("duration", 0, "How long to play (0 = until interrupted)")
	difficulty := flag.String("difficulty", "normal", "Bot difficulty: easy, normal, hard")
	levelsDir := flag.String("levels", "", "Directory containing levels/*.tmx (empty = built-in open arena)")
	remember := flag.Bool("remember", true, "Persist the reconnect token between runs")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	b := &bot{
		name:       *name,
		levelsDir:  *levelsDir,
		difficulty: cfg.ParseBotDifficulty(*difficulty),
	}
	if *remember {
		store, err := network.OpenProfileStore("lazertag-bot-" + *name)
		if err != nil {
			log.Printf("[client] profile disabled: %v", err)
		} else {
			b.store = store
		}
	}

	target := *addr
	if *masterURL != "" {
		servers, err := network.NewBrowser(*masterURL).Servers(ctx)
		if err != nil {
			log.Fatalf("[client] %v", err)
		}
		picked, err := network.PickServer(servers, protocol.Version)
		if err != nil {
			log.Fatalf("[client] %v", err)
		}
		log.Printf("[client] joining %q at %s (%d/%d players)", picked.Name, picked.Address, picked.Players, picked.MaxPlayers)
		target = picked.Address
	}

	if err := b.run(ctx, target); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		log.Fatalf("[client] %v", err)
	}
	log.Println("[client] bot stopped")
}

type bot struct {
	name       string
	levelsDir  string
	difficulty cfg.BotDifficulty
	store      network.ItemStore
}

func (b *bot) run(ctx context.Context, addr string) error {
	join := network.JoinOptions{Version: protocol.Version, PlayerName: b.name}
	if b.store != nil {
		profile, err := network.LoadProfile(b.store)
		if err != nil {
			log.Printf("[client] %v", err)
		} else if profile != nil {
			join.ReconnectToken = profile.ReconnectToken
		}
	}

	client := network.NewClient()
	client.Connect(addr, join)
	defer client.Disconnect()

	if err := waitJoined(ctx, client); err != nil {
		return err
	}

	if b.store != nil {
		err := network.SaveProfile(b.store, &network.Profile{
			Name:           b.name,
			ReconnectToken: client.ReconnectToken(),
			ParticipantID:  client.ParticipantID(),
		})
		if err != nil {
			log.Printf("[client] %v", err)
		}
	}

	arena := b.loadArena(client.Arena())
	return b.play(ctx, client, arena)
}

func waitJoined(ctx context.Context, client *network.Client) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			switch client.State() {
			case network.StateJoinedGame:
				return nil
			case network.StateError:
				return client.LastError()
			}
		}
	}
}

func (b *bot) loadArena(name string) *leveldata.Arena {
	if b.levelsDir != "" {
		arenas, _, err := leveldata.LoadAllArenas(os.DirFS(b.levelsDir), "levels", cfg.Arena.PixelsPerUnit)
		if err != nil {
			log.Printf("[client] load levels: %v", err)
		} else if a, ok := arenas[name]; ok {
			return a
		}
	}
	if name != "open" {
		log.Printf("[client] arena %q not available locally, predicting against the open arena", name)
	}
	return leveldata.OpenArena(float64(cfg.Arena.Width), float64(cfg.Arena.Depth), cfg.Arena.WallThickness)
}

func (b *bot) play(ctx context.Context, client *network.Client, arena *leveldata.Arena) error {
	tickRate := client.TickRate()
	if tickRate <= 0 {
		tickRate = cfg.Server.TickRate
	}
	dt := 1 / float64(tickRate)
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	brain := network.NewBrain(b.difficulty)
	myID := client.NetworkID()

	var (
		predictor *network.Predictor
		players   []network.PlayerView
		health    = cfg.Player.Health
		maxHealth = cfg.Player.Health
		defeated  bool
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if st := client.State(); st != network.StateJoinedGame {
			if err := client.LastError(); err != nil {
				return err
			}
			return fmt.Errorf("connection %s", st)
		}

		if snap := client.LatestSnapshot(); snap != nil {
			players, _ = network.DecodeSnapshot(*snap)
			if me, ok := network.FindPlayer(players, myID); ok {
				if predictor == nil {
					predictor = network.NewPredictor(arena, leveldata.SpawnPoint{
						X:   me.Transform.X,
						Z:   me.Transform.Z,
						Yaw: me.Transform.Yaw,
					}, tickRate)
					brain.SetNavGrid(systems.CreateNavGrid(predictor.World(),
						arena.Width, arena.Depth, cfg.Bot.NavCellSize, cfg.Player.Width))
				}
				if predictor.Reconcile(me.Transform.Position(), me.State.LastSequence) {
					log.Printf("[client] corrected prediction at seq %d", me.State.LastSequence)
				}
				health, maxHealth, defeated = me.State.Health, me.State.MaxHealth, me.State.Defeated
			}
		}

		b.logEvents(client, myID)

		if predictor == nil || defeated {
			continue
		}

		before := predictor.State.Position
		frame := brain.Decide(predictor.State, myID, health, maxHealth, players, dt)
		input := predictor.Step(frame, time.Now().UnixMilli())
		if frame.Move.X() != 0 && predictor.State.Position.Sub(before).Len() < 1e-3 {
			brain.Bumped()
		}

		if err := client.SendMessage(input); err != nil {
			log.Printf("[client] send input: %v", err)
		}
	}
}

func (b *bot) logEvents(client *network.Client, myID esync.NetworkId) {
	me := uint(myID)
	for _, evt := range client.DrainHitEvents() {
		switch me {
		case evt.AttackerID:
			log.Printf("[client] tagged %d for %d (health %d)", evt.TargetID, evt.Damage, evt.Health)
		case evt.TargetID:
			log.Printf("[client] tagged by %d, health %d", evt.AttackerID, evt.Health)
		}
	}
	for _, evt := range client.DrainDeathEvents() {
		switch me {
		case evt.KillerID:
			log.Printf("[client] defeated %d", evt.VictimID)
		case evt.VictimID:
			log.Printf("[client] defeated by %d", evt.KillerID)
		}
	}
	client.DrainShotEvents()
	for _, evt := range client.DrainDespawnEvents() {
		log.Printf("[client] player %d left", evt.NetworkID)
	}
}
