package mocks

import (
	"strings"
	"sync"

	"github.com/felixgeelhaar/stackinit/internal/ports"
)

// ReportEntry is one recorded Reporter call.
type ReportEntry struct {
	Kind    string // section, success, skip, failure, summary
	Message string
	Err     error
	Lines   []string
}

// Reporter is a thread-safe test double for ports.Reporter that records
// every call in order.
type Reporter struct {
	mu      sync.Mutex
	entries []ReportEntry
}

// NewReporter creates a new Reporter mock.
func NewReporter() *Reporter {
	return &Reporter{}
}

func (r *Reporter) record(e ReportEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// Section records a section heading.
func (r *Reporter) Section(title string) {
	r.record(ReportEntry{Kind: "section", Message: title})
}

// Success records a success line.
func (r *Reporter) Success(msg string) {
	r.record(ReportEntry{Kind: "success", Message: msg})
}

// Skip records a skip line.
func (r *Reporter) Skip(msg string) {
	r.record(ReportEntry{Kind: "skip", Message: msg})
}

// Failure records a failure line and its diagnostic.
func (r *Reporter) Failure(msg string, err error) {
	r.record(ReportEntry{Kind: "failure", Message: msg, Err: err})
}

// Summary records a summary block.
func (r *Reporter) Summary(title string, lines ...string) {
	r.record(ReportEntry{Kind: "summary", Message: title, Lines: append([]string(nil), lines...)})
}

// Entries returns a copy of every recorded call.
func (r *Reporter) Entries() []ReportEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ReportEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the messages of every recorded call of the given kind.
func (r *Reporter) Messages(kind string) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Kind == kind {
			out = append(out, e.Message)
		}
	}
	return out
}

// Contains reports whether any recorded message contains substr.
func (r *Reporter) Contains(substr string) bool {
	for _, e := range r.Entries() {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// Ensure Reporter implements ports.Reporter.
var _ ports.Reporter = (*Reporter)(nil)
