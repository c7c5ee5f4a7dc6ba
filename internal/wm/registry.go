package wm

import (
	"sort"

	"github.com/exnwm/exn/internal/platform"
)

// Client is one managed top-level window.
type Client struct {
	ID platform.WindowID
	ws *Workspace
}

// Workspace returns the workspace currently holding the client, or nil once
// it has been detached.
func (c *Client) Workspace() *Workspace {
	return c.ws
}

// Registry indexes every managed client by window ID.
type Registry struct {
	clients map[platform.WindowID]*Client
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[platform.WindowID]*Client)}
}

// Lookup returns the client managing id.
func (r *Registry) Lookup(id platform.WindowID) (*Client, bool) {
	c, ok := r.clients[id]
	return c, ok
}

// Register creates a client for id and puts it at the front of ws. It
// returns false without touching anything if id is already managed, so a
// window announced twice is never attached twice.
func (r *Registry) Register(id platform.WindowID, ws *Workspace) (*Client, bool) {
	if _, ok := r.clients[id]; ok {
		return nil, false
	}
	c := &Client{ID: id}
	ws.InsertFront(c)
	r.clients[id] = c
	return c, true
}

// Unregister detaches the client from its workspace, repairing that
// workspace's current client, and forgets it.
func (r *Registry) Unregister(id platform.WindowID) (*Client, bool) {
	c, ok := r.clients[id]
	if !ok {
		return nil, false
	}
	if c.ws != nil {
		c.ws.Remove(c)
	}
	delete(r.clients, id)
	return c, true
}

// Len returns the number of managed clients.
func (r *Registry) Len() int {
	return len(r.clients)
}

// IDs returns the managed window IDs in ascending order.
func (r *Registry) IDs() []platform.WindowID {
	ids := make([]platform.WindowID, 0, len(r.clients))
	for id := range r.clients {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
