// Package indicator drives the status LED used by the menu heartbeat.
package indicator

import "sync"

// Pin is the output subset of a GPIO; machine.Pin satisfies it.
type Pin interface {
	Set(level bool)
	Get() bool
}

type Params struct {
	ActiveLow bool
	Initial   bool
}

// LED maps logical on/off onto a pin level.
type LED struct {
	pin       Pin
	activeLow bool
}

// NewLED drives pin to the initial logical state. The pin must already be
// configured as an output.
func NewLED(pin Pin, p Params) *LED {
	l := &LED{pin: pin, activeLow: p.ActiveLow}
	l.Set(p.Initial)
	return l
}

// Set implements menu.Indicator.
func (l *LED) Set(on bool) {
	level := on
	if l.activeLow {
		level = !level
	}
	l.pin.Set(level)
}

// State returns the logical state.
func (l *LED) State() bool {
	level := l.pin.Get()
	if l.activeLow {
		level = !level
	}
	return level
}

func (l *LED) Toggle() { l.Set(!l.State()) }

// FakePin is an in-memory pin for host builds and tests. OnChange, when
// set, is called with every new level.
type FakePin struct {
	mu       sync.Mutex
	level    bool
	changes  int
	OnChange func(level bool)
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	changed := level != p.level
	p.level = level
	if changed {
		p.changes++
	}
	cb := p.OnChange
	p.mu.Unlock()
	if changed && cb != nil {
		cb(level)
	}
}

func (p *FakePin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// Changes counts level transitions.
func (p *FakePin) Changes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.changes
}
