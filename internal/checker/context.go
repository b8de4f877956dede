package checker

import (
	"strings"

	"github.com/fitchlang/fitch/internal/logic"
)

// Context maps hypothesis names to the propositions they assume.
// Frames chain through a parent: entering a binder pushes a child
// frame, leaving it drops the frame without touching the parent.
// Insertion order is preserved per frame.
type Context struct {
	hyps   map[string]logic.Prop
	order  []string
	parent *Context
}

// NewContext creates a new empty context.
func NewContext() *Context {
	return &Context{
		hyps: make(map[string]logic.Prop),
	}
}

// NewChildContext creates a context scoped under the given parent.
// Hypotheses in the child shadow those in the parent.
func NewChildContext(parent *Context) *Context {
	return &Context{
		hyps:   make(map[string]logic.Prop),
		parent: parent,
	}
}

// Lookup retrieves the proposition assumed under the given name.
// Returns nil if the name is not bound.
func (c *Context) Lookup(name string) logic.Prop {
	if p, ok := c.hyps[name]; ok {
		return p
	}
	if c.parent != nil {
		return c.parent.Lookup(name)
	}
	return nil
}

// Bind adds a hypothesis to the current frame.
func (c *Context) Bind(name string, p logic.Prop) {
	if _, ok := c.hyps[name]; !ok {
		c.order = append(c.order, name)
	}
	c.hyps[name] = p
}

// Names returns the hypothesis names of this frame in insertion order,
// not including the parent.
func (c *Context) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// String returns a string representation of the context.
func (c *Context) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, name := range c.order {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(" : ")
		b.WriteString(c.hyps[name].String())
	}
	if c.parent != nil {
		b.WriteString(" | parent: ")
		b.WriteString(c.parent.String())
	}
	b.WriteString("}")
	return b.String()
}
