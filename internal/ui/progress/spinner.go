// Package progress shows activity while nixpm waits on slow commands.
//
// The spinner draws on its own writer (stderr in practice) so the report on
// stdout stays clean when piped or copied.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

// messageUpdate is sent to update the spinner message
type messageUpdate string

// Spinner wraps a Bubbletea spinner for simple non-interactive use
type Spinner struct {
	out       io.Writer
	program   *tea.Program
	msgChan   chan string
	done      chan struct{}
	mu        sync.Mutex
	isRunning bool
	lastMsg   string
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	msgChan chan string
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForMessage())
}

func (m spinnerModel) waitForMessage() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.msgChan
		if !ok {
			return tea.Quit()
		}
		return messageUpdate(msg)
	}
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messageUpdate:
		m.message = string(msg)
		return m, m.waitForMessage()
	case tea.KeyPressMsg:
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() tea.View {
	if m.message == "" {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s %s", m.spinner.View(), m.message))
}

// NewSpinner creates a spinner that draws message on out
func NewSpinner(out io.Writer, message string) *Spinner {
	return &Spinner{
		out:     out,
		msgChan: make(chan string, 10),
		done:    make(chan struct{}),
		lastMsg: message,
	}
}

// Start begins the spinner animation. A spinner can only be started once.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning || s.program != nil {
		return
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	model := spinnerModel{
		spinner: sp,
		message: s.lastMsg,
		msgChan: s.msgChan,
	}

	// The root context owns SIGINT
	s.program = tea.NewProgram(model, tea.WithoutSignalHandler(), tea.WithOutput(s.out))
	s.isRunning = true

	go func() {
		_, _ = s.program.Run()
		close(s.done)
	}()
}

// updateMessage changes the spinner message
func (s *Spinner) updateMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		s.lastMsg = message
		return
	}

	// Drop the update if the program is behind; the next one will land
	select {
	case s.msgChan <- message:
	default:
	}
}

// Stop stops the spinner and clears its line
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	close(s.msgChan)
	s.mu.Unlock()

	s.program.Quit()

	select {
	case <-s.done:
	case <-time.After(500 * time.Millisecond):
	}

	fmt.Fprint(s.out, "\r\033[K")
}

// elapsedAfter is how long an activity runs before its message shows the
// elapsed time.
const elapsedAfter = 3 * time.Second

// Activity returns a function suitable for doctor.Doctor.Activity: each call
// shows a spinner with msg on out until the returned stop function runs.
// Once the activity passes elapsedAfter, the message counts seconds.
func Activity(out io.Writer) func(msg string) func() {
	return func(msg string) func() {
		s := NewSpinner(out, msg)
		s.Start()

		done := make(chan struct{})
		finished := make(chan struct{})
		go func() {
			defer close(finished)
			start := time.Now()
			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case now := <-ticker.C:
					if elapsed := now.Sub(start); elapsed >= elapsedAfter {
						s.updateMessage(elapsedMessage(msg, elapsed))
					}
				}
			}
		}()

		return func() {
			close(done)
			<-finished
			s.Stop()
		}
	}
}

// elapsedMessage appends whole elapsed seconds to msg.
func elapsedMessage(msg string, elapsed time.Duration) string {
	return fmt.Sprintf("%s (%ds)", msg, int(elapsed/time.Second))
}
