package rlink

import "github.com/rohanthewiz/rlink/core/navstack"

// HostOp records one call made on a MemoryHost.
type HostOp struct {
	Op        string // "replace", "push" or "install"
	Templates []string
}

// MemoryHost is a BatchHost backed by an in-memory back stack.
// It records every call, which makes it the host of choice in tests and
// for previewing what a link would do. It is not safe for concurrent use.
type MemoryHost struct {
	stack *navstack.Stack[Destination]
	ops   []HostOp
}

// NewMemoryHost returns a host with an empty back stack.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{stack: navstack.New[Destination]()}
}

func (h *MemoryHost) Replace(dest Destination) error {
	h.stack.Replace(dest)
	h.ops = append(h.ops, HostOp{Op: "replace", Templates: []string{dest.Template}})
	return nil
}

func (h *MemoryHost) Push(dest Destination) error {
	h.stack.Push(dest)
	h.ops = append(h.ops, HostOp{Op: "push", Templates: []string{dest.Template}})
	return nil
}

func (h *MemoryHost) Install(dests []Destination) error {
	h.stack.Install(dests)
	templates := make([]string, len(dests))
	for i, d := range dests {
		templates[i] = d.Template
	}
	h.ops = append(h.ops, HostOp{Op: "install", Templates: templates})
	return nil
}

// Back pops the top destination, like a user pressing back.
func (h *MemoryHost) Back() (Destination, bool) {
	return h.stack.Pop()
}

// Current returns the destination on top of the stack.
func (h *MemoryHost) Current() (Destination, bool) {
	return h.stack.Peek()
}

// Stack returns the back stack, bottom first.
func (h *MemoryHost) Stack() []Destination {
	return h.stack.Entries()
}

// Routes returns the route values on the back stack, bottom first.
func (h *MemoryHost) Routes() []any {
	entries := h.stack.Entries()
	out := make([]any, len(entries))
	for i, d := range entries {
		out[i] = d.Route
	}
	return out
}

// Ops returns the calls made on the host so far.
func (h *MemoryHost) Ops() []HostOp {
	out := make([]HostOp, len(h.ops))
	copy(out, h.ops)
	return out
}
