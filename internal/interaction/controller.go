// Package interaction implements the click-then-confirm navigation gesture.
//
// Clicking a node shows a transient confirmation marker and a "switch?"
// affordance; activating the affordance emits a navigation request after a
// short commit delay. The controller only emits intents: routing, and routing
// failures, belong to the host. Timer callbacks check the node id they were
// armed for, so a timer firing after the state moved on is a no-op.
package interaction

import (
	"sync"
	"time"
)

// Timing defaults. The click marker fades almost immediately under reduced
// motion so the confirmation visual never lingers.
const (
	DefaultClickFade   = 600 * time.Millisecond
	ReducedMotionFade  = 50 * time.Millisecond
	DefaultCommitDelay = 100 * time.Millisecond
)

// NavigateFunc receives the content path of a committed navigation
type NavigateFunc func(path string)

// Controller is the state machine behind the gesture:
// Idle -> Clicked(node) -> Confirming(node) -> Idle, with an independent
// navigating flag guarding re-entrancy.
type Controller struct {
	mu          sync.Mutex
	clickedID   string
	pendingID   string
	pendingPath string
	navigating  bool

	clickFade   time.Duration
	commitDelay time.Duration
	onNavigate  NavigateFunc

	fadeTimer *time.Timer
}

// Option configures a Controller
type Option func(*Controller)

// WithReducedMotion shortens the click marker fade for hosts that honor the
// user's reduced motion preference
func WithReducedMotion() Option {
	return func(c *Controller) {
		c.clickFade = ReducedMotionFade
	}
}

// WithDelays overrides both timers; meant for tests
func WithDelays(fade, commit time.Duration) Option {
	return func(c *Controller) {
		c.clickFade = fade
		c.commitDelay = commit
	}
}

// New creates a controller emitting navigation requests through onNavigate.
// A nil onNavigate drops committed navigations.
func New(onNavigate NavigateFunc, opts ...Option) *Controller {
	c := &Controller{
		clickFade:   DefaultClickFade,
		commitDelay: DefaultCommitDelay,
		onNavigate:  onNavigate,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Click marks a node as clicked and pending switch. Clicking another node
// moves both markers; clicking while a navigation is committing is a no-op.
// Returns whether the click was accepted.
func (c *Controller) Click(id, path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.navigating {
		return false
	}

	c.clickedID = id
	c.pendingID = id
	c.pendingPath = path

	if c.fadeTimer != nil {
		c.fadeTimer.Stop()
	}
	c.fadeTimer = time.AfterFunc(c.clickFade, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// only clear if the marker still belongs to this click
		if c.clickedID == id {
			c.clickedID = ""
		}
	})

	return true
}

// ActivateSwitch commits the pending switch: the pending marker clears
// immediately, and after the commit delay the navigation request is emitted.
// A no-op without a pending node or while already navigating. Returns whether
// the activation was accepted.
func (c *Controller) ActivateSwitch() bool {
	c.mu.Lock()
	if c.navigating || c.pendingID == "" {
		c.mu.Unlock()
		return false
	}

	path := c.pendingPath
	c.navigating = true
	c.pendingID = ""
	c.pendingPath = ""
	c.mu.Unlock()

	time.AfterFunc(c.commitDelay, func() {
		if c.onNavigate != nil {
			c.onNavigate(path)
		}
		c.mu.Lock()
		c.navigating = false
		c.mu.Unlock()
	})

	return true
}

// ClearPending drops the pending switch without navigating, e.g. when focus
// moves for another reason
func (c *Controller) ClearPending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingID = ""
	c.pendingPath = ""
}

// ClickedID returns the node currently showing the click confirmation visual
func (c *Controller) ClickedID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clickedID
}

// PendingID returns the node currently offering the switch affordance
func (c *Controller) PendingID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingID
}

// Navigating reports whether a navigation is committing
func (c *Controller) Navigating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navigating
}
