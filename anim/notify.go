package anim

type event int

const (
	eventStarted event = iota
	eventStopped
)

// events collected while the animation is locked and delivered after it is
// unlocked, so handlers are free to call back into the animation.
type events []event

// OnStarted registers fn to be called each time the animation starts.
func (a *Animation) OnStarted(fn func()) {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()
	a.started = append(a.started, fn)
}

// OnStopped registers fn to be called each time a running animation stops.
func (a *Animation) OnStopped(fn func()) {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()
	a.stopped = append(a.stopped, fn)
}

// OnRedraw registers fn to be called when the animation wants to be painted.
// No further request is made until Draw has been called.
func (a *Animation) OnRedraw(fn func()) {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()
	a.redraw = append(a.redraw, fn)
}

// OnTicked registers fn to be called at the start of every tick. If any handler
// returns true the tick is considered handled and the animation skips its own
// processing for that tick.
func (a *Animation) OnTicked(fn func() bool) {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()
	a.ticked = append(a.ticked, fn)
}

func (a *Animation) dispatch(ev events) {
	if len(ev) == 0 {
		return
	}

	a.notifyMu.Lock()
	started := append([]func(){}, a.started...)
	stopped := append([]func(){}, a.stopped...)
	a.notifyMu.Unlock()

	for _, e := range ev {
		fns := started
		if e == eventStopped {
			fns = stopped
		}
		for _, fn := range fns {
			fn()
		}
	}
}

func (a *Animation) fireTicked() bool {
	a.notifyMu.Lock()
	fns := append([]func() bool{}, a.ticked...)
	a.notifyMu.Unlock()

	handled := false
	for _, fn := range fns {
		if fn() {
			handled = true
		}
	}
	return handled
}
