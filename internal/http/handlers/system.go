package handlers

import (
	"net/http"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter records the engine so /api/routes can list it.
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	body := gin.H{"status": "ok", "message": "backend de pasajes en línea", "signed_in": false}
	if h.Session != nil {
		body["signed_in"] = h.Session.SignedIn()
	}
	if h.Desk != nil {
		if loaded := h.Desk.Aggregator.Snapshot().LoadedAt; !loaded.IsZero() {
			body["loaded_at"] = loaded
			body["trips"] = len(h.Desk.Trips())
		}
	}
	c.JSON(http.StatusOK, body)
}

// GET /api/routes lists method and path of every mounted route.
func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router no disponible"})
		return
	}

	routes := r.Routes()
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{"method": rt.Method, "path": rt.Path})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out, "count": len(out)})
}
