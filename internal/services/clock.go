package services

import (
	"sync"
	"time"
)

// Clock keeps the "HH:MM" shown in the page header, refreshed once a minute
// until Stop is called.
type Clock struct {
	mu      sync.RWMutex
	current string
	now     func() time.Time

	stop chan struct{}
	once sync.Once
}

func NewClock() *Clock {
	c := &Clock{now: time.Now, stop: make(chan struct{})}
	c.tick()
	return c
}

func (c *Clock) tick() {
	s := c.now().Format("15:04")
	c.mu.Lock()
	c.current = s
	c.mu.Unlock()
}

func (c *Clock) Start(every time.Duration) {
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-t.C:
				c.tick()
			case <-c.stop:
				return
			}
		}
	}()
}

func (c *Clock) Stop() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Clock) Now() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}
