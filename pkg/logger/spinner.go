package logger

import (
	"fmt"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a message during long-running operations such as waiting
// on the scheduler
type Spinner struct {
	mu       sync.Mutex
	active   bool
	message  string
	stopChan chan struct{}
}

// NewSpinner creates a spinner with the given message
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message:  message,
		stopChan: make(chan struct{}),
	}
}

// Start begins the spinner animation
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go func() {
		i := 0
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.stopChan:
				fmt.Printf("\r\033[K")
				return
			case <-ticker.C:
				s.mu.Lock()
				fmt.Printf("\r%s %s", spinnerFrames[i%len(spinnerFrames)], s.message)
				s.mu.Unlock()
				i++
			}
		}
	}()
}

// UpdateMessage changes the message shown next to the spinner
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Stop ends the animation and clears the line
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.active = false
	close(s.stopChan)
}
