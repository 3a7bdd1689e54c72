package deletion

import "sync"

// Phase of the two-step removal animation for one sidebar item.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSliding    Phase = "sliding"
	PhaseCollapsing Phase = "collapsing"
)

// Controller is the state machine behind the sidebar's delete
// animation: idle -> sliding -> collapsing -> removed. It owns no
// timers; the frontend reports each transition end, which also makes
// the phases easy to drive from tests. Only one deletion may be in
// flight across all documents, and the data removal callback fires
// exactly once, after both phases completed.
type Controller struct {
	mu      sync.Mutex
	id      string // document being deleted, "" when idle
	phase   Phase
	heights map[string]int
	remove  func(id string)
}

func NewController(remove func(id string)) *Controller {
	return &Controller{phase: PhaseIdle, heights: map[string]int{}, remove: remove}
}

// RequestDelete starts the slide-out phase for a confirmed deletion.
// Returns false while another deletion is still in flight.
func (c *Controller) RequestDelete(id string, height int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.id != "" {
		return false
	}
	c.id = id
	c.phase = PhaseSliding
	c.heights[id] = height
	return true
}

// SlideDone moves sliding -> collapsing, re-capturing the item height
// before it is driven to zero. Duplicate or stray signals are ignored.
func (c *Controller) SlideDone(id string, height int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.id != id || c.phase != PhaseSliding {
		return false
	}
	c.phase = PhaseCollapsing
	c.heights[id] = height
	return true
}

// CollapseDone finishes the deletion: state resets to idle, the height
// bookkeeping is dropped and the removal callback fires.
func (c *Controller) CollapseDone(id string) bool {
	c.mu.Lock()
	if c.id != id || c.phase != PhaseCollapsing {
		c.mu.Unlock()
		return false
	}
	c.id = ""
	c.phase = PhaseIdle
	delete(c.heights, id)
	remove := c.remove
	c.mu.Unlock()

	if remove != nil {
		remove(id)
	}
	return true
}

// Deleting returns the in-flight document id and phase ("" and idle
// when nothing is being removed).
func (c *Controller) Deleting() (string, Phase) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id, c.phase
}

// Height returns the captured pixel height for an item mid-deletion.
func (c *Controller) Height(id string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h, ok := c.heights[id]
	return h, ok
}
