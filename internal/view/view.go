package view

import (
	"strings"
	"sync"
)

// State is one of the primary overlays rendered on top of the player surface.
type State string

const (
	Home      State = "HOME"
	Portfolio State = "PORTFOLIO"
	About     State = "ABOUT"
	Contact   State = "CONTACT"
	Admin     State = "ADMIN"
)

// Valid reports whether s names a known view.
func (s State) Valid() bool {
	switch s {
	case Home, Portfolio, About, Contact, Admin:
		return true
	}
	return false
}

// Controller is the finite-state view selector. Exactly one primary overlay
// is current at a time; transitions happen only via Navigate, except that a
// location matching the reserved admin marker forces Admin on every check.
// The machine has no terminal state and runs for the life of the process.
type Controller struct {
	mu        sync.RWMutex
	state     State
	adminPath string
}

// NewController creates a controller in the Home state. adminPath is the
// reserved out-of-band marker (e.g. "/adminvmedia").
func NewController(adminPath string) *Controller {
	return &Controller{
		state:     Home,
		adminPath: adminPath,
	}
}

// Current returns the current view.
func (c *Controller) Current() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

// Navigate transitions to s. Unknown states are ignored and the current view
// is returned. Leaving Admin reports cleared=true so the caller can scrub
// the marker from the visible location.
func (c *Controller) Navigate(s State) (current State, cleared bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !s.Valid() {
		return c.state, false
	}
	cleared = c.state == Admin && s != Admin
	c.state = s
	return c.state, cleared
}

// Observe checks a document location against the reserved marker; a match
// forces the Admin view regardless of prior state. It returns the resulting
// view. Call it once at startup and on every location-change event.
func (c *Controller) Observe(path string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.matchesMarker(path) {
		c.state = Admin
	}
	return c.state
}

// AdminPath returns the reserved marker path.
func (c *Controller) AdminPath() string {
	return c.adminPath
}

func (c *Controller) matchesMarker(path string) bool {
	if c.adminPath == "" {
		return false
	}
	// Both the path form (/adminvmedia) and the fragment form
	// (#/adminvmedia) count as the marker.
	path = strings.TrimPrefix(path, "#")
	return path == c.adminPath || strings.HasSuffix(path, c.adminPath)
}

// StateForPath maps a public page path to its view. The admin marker is
// handled by Observe, not here.
func StateForPath(path string) (State, bool) {
	switch strings.TrimSuffix(path, "/") {
	case "":
		return Home, true
	case "/portfolio":
		return Portfolio, true
	case "/about":
		return About, true
	case "/contact":
		return Contact, true
	}
	return "", false
}
