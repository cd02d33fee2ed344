package simulation

import "sync"

// Interrupt is a one-shot shutdown signal. Once set it stays set; there is
// no way to clear it.
type Interrupt struct {
	once sync.Once
	lazy sync.Once
	done chan struct{}
}

// Shutdown is the process-wide interrupt observed by every waiting actor.
var Shutdown = NewInterrupt()

// NewInterrupt creates an unset interrupt.
func NewInterrupt() *Interrupt {
	return &Interrupt{done: make(chan struct{})}
}

func (i *Interrupt) channel() chan struct{} {
	i.lazy.Do(func() {
		if i.done == nil {
			i.done = make(chan struct{})
		}
	})
	return i.done
}

// Set raises the signal. Calling it again does nothing.
func (i *Interrupt) Set() {
	ch := i.channel()
	i.once.Do(func() { close(ch) })
}

// IsSet reports whether the signal has been raised.
func (i *Interrupt) IsSet() bool {
	select {
	case <-i.channel():
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the signal is raised.
func (i *Interrupt) Done() <-chan struct{} {
	return i.channel()
}
