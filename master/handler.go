package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name       string `json:"name" binding:"required"`
	Address    string `json:"address" binding:"required"`
	Arena      string `json:"arena"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"maxPlayers"`
	Version    string `json:"version"`
	Region     string `json:"region"`
}

type registerResponse struct {
	ID string `json:"id"`
}

type heartbeatRequest struct {
	ID      string `json:"id" binding:"required"`
	Players int    `json:"players"`
}

const maxRequestBody = 1 << 16 // 64 KB

// NewRouter wires the registry API.
func NewRouter(reg *Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBody)
		c.Next()
	})

	r.GET("/health", Health)

	servers := r.Group("/servers")
	{
		servers.GET("", ListServers(reg))
		servers.POST("/register", RegisterServer(reg))
		servers.POST("/heartbeat", Heartbeat(reg))
	}
	return r
}

func ListServers(reg *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, reg.List())
	}
}

func RegisterServer(reg *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and address required"})
			return
		}

		id := reg.Register(ServerInfo{
			Name:       req.Name,
			Address:    req.Address,
			Arena:      req.Arena,
			Players:    req.Players,
			MaxPlayers: req.MaxPlayers,
			Version:    req.Version,
			Region:     req.Region,
		})

		log.Printf("[master] registered server %q at %s (id=%s)", req.Name, req.Address, id)

		c.JSON(http.StatusCreated, registerResponse{ID: id})
	}
}

func Heartbeat(reg *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req heartbeatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}

		if !reg.Heartbeat(req.ID, req.Players) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown server"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
