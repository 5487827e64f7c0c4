package dashboard

import (
	"context"
	"log"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"coursehub/client"
	"coursehub/notify"
)

// SliceKey names one fetched collection of view state.
type SliceKey string

// Action names one user-initiated mutation.
type Action string

// Loader fetches one slice from the backend and stores it on the owning
// dashboard. A loader never mutates anything but its own slice.
type Loader func(ctx context.Context) error

// ConfirmFunc asks the user to confirm a destructive action. A nil
// ConfirmFunc confirms everything.
type ConfirmFunc func(prompt string) bool

// ValidationError is a local pre-submit failure. Nothing was sent and no
// notification was emitted; Fields names every invalid field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation failed!" }

// Controller is the generic fetch/dispatch core shared by the four role
// dashboards: a set of named slice loaders, a declared side-effect table
// (mutation -> invalidated slices), a notifier and a confirm hook.
//
// Slices are mutated only by their own loader; the view layer reads them
// from a single goroutine. The only cross-goroutine state is the loading
// gate, which is mutex-guarded.
type Controller struct {
	api      *client.Client
	notifier *notify.Center
	confirm  ConfirmFunc

	loaders map[SliceKey]Loader
	primary SliceKey
	effects map[Action][]SliceKey

	mu      sync.Mutex
	loading bool
}

func newController(api *client.Client, notifier *notify.Center, confirm ConfirmFunc) *Controller {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &Controller{
		api:      api,
		notifier: notifier,
		confirm:  confirm,
		loaders:  make(map[SliceKey]Loader),
		effects:  make(map[Action][]SliceKey),
		loading:  true,
	}
}

func (c *Controller) registerSlice(key SliceKey, loader Loader) {
	c.loaders[key] = loader
}

// setPrimary marks the slice whose completion clears the loading gate.
func (c *Controller) setPrimary(key SliceKey) {
	c.primary = key
}

func (c *Controller) registerEffect(action Action, slices ...SliceKey) {
	c.effects[action] = slices
}

// Notifier exposes the notification surface.
func (c *Controller) Notifier() *notify.Center { return c.notifier }

// Loading reports whether the primary summary fetch is still in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller) setLoading(loading bool) {
	c.mu.Lock()
	c.loading = loading
	c.mu.Unlock()
}

// Load issues every registered loader concurrently and waits for all of
// them. Loaders are independent and may resolve in any order. A failed
// loader is logged and leaves its slice at the previous value; the
// loading gate clears as soon as the primary loader resolves, even while
// secondary slices are still in flight.
func (c *Controller) Load(ctx context.Context) {
	var g errgroup.Group
	for key, loader := range c.loaders {
		key, loader := key, loader
		g.Go(func() error {
			if err := loader(ctx); err != nil {
				log.Printf("dashboard: loading slice %q failed: %v", key, err)
			}
			if key == c.primary {
				c.setLoading(false)
			}
			return nil
		})
	}
	_ = g.Wait() // loaders never propagate errors
}

// Refresh re-fetches the given slices. Re-fetches are issued only after
// the triggering write resolved; among themselves they are unordered.
func (c *Controller) Refresh(ctx context.Context, keys ...SliceKey) {
	var g errgroup.Group
	for _, key := range keys {
		loader, ok := c.loaders[key]
		if !ok {
			continue
		}
		key, loader := key, loader
		g.Go(func() error {
			if err := loader(ctx); err != nil {
				log.Printf("dashboard: refreshing slice %q failed: %v", key, err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// InvalidatedBy returns the slices a mutation invalidates, sorted for
// stable inspection.
func (c *Controller) InvalidatedBy(action Action) []SliceKey {
	keys := append([]SliceKey(nil), c.effects[action]...)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// dispatch sends exactly one write and performs the declared side
// effects: on success one success notification and the action's
// re-fetches; on failure one error notification carrying the backend's
// message (or the fallback) and no state change. Slices are never
// mutated optimistically and nothing is retried.
func (c *Controller) dispatch(ctx context.Context, action Action, successMsg, fallbackMsg string, call func(context.Context) error) error {
	if err := call(ctx); err != nil {
		c.notifier.Error(client.ErrorMessage(err, fallbackMsg))
		return err
	}
	c.notifier.Success(successMsg)
	c.Refresh(ctx, c.effects[action]...)
	return nil
}

// confirmed runs the destructive-action confirmation step.
func (c *Controller) confirmed(prompt string) bool {
	return c.confirm(prompt)
}
