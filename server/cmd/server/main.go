package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/lazertag/config"
	"github.com/automoto/lazertag/server/core"
	"github.com/automoto/lazertag/shared/leveldata"
	"github.com/automoto/lazertag/shared/protocol"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", cfg.Server.TickRate, "Server tick rate (updates per second)")
	name := flag.String("name", "Lazertag Server", "Server display name")
	version := flag.String("version", protocol.Version, "Required client version (empty = accept any)")
	levelsDir := flag.String("levels", "", "Directory containing levels/*.tmx (empty = built-in open arena)")
	level := flag.String("level", "", "Arena to load from -levels (empty = first)")
	configPath := flag.String("config", "", "YAML tuning file, reloaded on change")
	masterURL := flag.String("master", "", "Master server URL for registration (empty = don't register)")
	address := flag.String("address", "", "Public address advertised to the master (default localhost:<port>)")
	region := flag.String("region", "", "Region advertised to the master")
	maxPlayers := flag.Int("maxplayers", cfg.Server.MaxPlayers, "Maximum joined players")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	var arena *leveldata.Arena
	if *levelsDir != "" {
		a, err := core.LoadArena(*levelsDir, *level)
		if err != nil {
			log.Fatalf("Failed to load arena: %v", err)
		}
		arena = a
	}

	server, err := core.NewServer(core.Options{
		Name:       *name,
		Version:    *version,
		TickRate:   *tickRate,
		MaxPlayers: *maxPlayers,
		Arena:      arena,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	var registration *core.Registration
	if *masterURL != "" {
		advertised := *address
		if advertised == "" {
			advertised = fmt.Sprintf("localhost:%d", *port)
		}
		registration = core.NewRegistration(*masterURL, core.RegistrationInfo{
			Name:       *name,
			Address:    advertised,
			Arena:      server.ArenaName(),
			Version:    *version,
			Region:     *region,
			MaxPlayers: *maxPlayers,
		}, server)
		registration.Start()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("[server] shutting down...")
		if registration != nil {
			registration.Stop()
		}
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("[server] starting %q on port %d (arena: %s, tick rate: %d/s, version: %s)",
		*name, *port, server.ArenaName(), *tickRate, *version)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
