package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Status markers.
const (
	MarkSuccess = "✅"
	MarkSkip    = "⚠️ "
	MarkFailure = "❌"
)

// Console writes progress lines to out and failures to errOut.
// It implements ports.Reporter.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer

	// Each writer gets its own renderer so a redirected stream stays plain.
	styles    Styles
	errStyles Styles

	plain   bool
	printed bool
}

// ConsoleOption configures a Console.
type ConsoleOption func(*consoleConfig)

type consoleConfig struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool
}

// WithWriters sets the output writers.
func WithWriters(out, errOut io.Writer) ConsoleOption {
	return func(c *consoleConfig) {
		c.out = out
		c.errOut = errOut
	}
}

// WithNoColor disables styling.
func WithNoColor(noColor bool) ConsoleOption {
	return func(c *consoleConfig) {
		c.noColor = noColor
	}
}

// NewConsole creates a Console writing to stdout and stderr by default.
func NewConsole(opts ...ConsoleOption) *Console {
	cfg := consoleConfig{out: os.Stdout, errOut: os.Stderr}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Console{
		out:       cfg.out,
		errOut:    cfg.errOut,
		styles:    NewStyles(lipgloss.NewRenderer(cfg.out)),
		errStyles: NewStyles(lipgloss.NewRenderer(cfg.errOut)),
		plain:     cfg.noColor,
	}
}

// Section prints a phase heading separated from earlier output by a blank line.
func (c *Console) Section(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.printed {
		fmt.Fprintln(c.out)
	}
	fmt.Fprintln(c.out, c.render(c.styles.Section, title))
	c.printed = true
}

// Success prints a success line.
func (c *Console) Success(msg string) {
	c.line(c.out, c.styles.Success, MarkSuccess+" "+msg)
}

// Skip prints a skip line.
func (c *Console) Skip(msg string) {
	c.line(c.out, c.styles.Warning, MarkSkip+" "+msg)
}

// Failure prints a failure line and, if err is non-nil, its message.
func (c *Console) Failure(msg string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.errOut, c.render(c.errStyles.Error, MarkFailure+" "+msg))
	if err != nil {
		fmt.Fprintln(c.errOut, c.render(c.errStyles.Detail, strings.TrimRight(err.Error(), "\n")))
	}
	c.printed = true
}

// Summary prints a title after a blank line, then each line as is.
func (c *Console) Summary(title string, lines ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.render(c.styles.Summary, title))
	for _, l := range lines {
		fmt.Fprintln(c.out, l)
	}
	c.printed = true
}

func (c *Console) line(w io.Writer, style lipgloss.Style, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(w, c.render(style, text))
	c.printed = true
}

func (c *Console) render(style lipgloss.Style, text string) string {
	if c.plain {
		return text
	}
	return style.Render(text)
}
