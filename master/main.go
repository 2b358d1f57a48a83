package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	port := flag.Int("port", 8080, "HTTP listen port")
	ttl := flag.Duration("ttl", 90*time.Second, "Server TTL before expiry")
	flag.Parse()

	gin.SetMode(gin.ReleaseMode)

	reg := NewRegistry(*ttl)
	reg.Start(30 * time.Second)
	defer reg.Stop()

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("[master] starting on %s (TTL=%s)", addr, *ttl)
	if err := NewRouter(reg).Run(addr); err != nil {
		log.Fatalf("[master] fatal: %v", err)
	}
}
