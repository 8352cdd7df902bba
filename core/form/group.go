package form

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/forms/core/sanitizer"
	"github.com/dmitrymomot/forms/pkg/obfuscate"
)

// Group is a composite control owning an ordered list of children.
//
// A named group introduces a nesting level: its children read the sub-map
// found under its submit key and their values are reported under its name.
// A group with an empty name is transparent and its children share the
// parent's namespace.
type Group struct {
	base
	children []Control
}

// NewGroup creates a group. Pass an empty name for a transparent group.
func NewGroup(name string, opts ...ControlOption) *Group {
	g := &Group{base: newBase(name, opts)}
	g.self = g
	return g
}

// Add appends children in traversal order. Nil children and the group
// itself are ignored; deeper cycles are reported by Prepare.
func (g *Group) Add(children ...Control) *Group {
	for _, c := range children {
		if c == nil || c == Control(g) {
			continue
		}
		g.children = append(g.children, c)
	}
	return g
}

// Children returns the direct children in insertion order.
func (g *Group) Children() []Control {
	return g.children
}

// Transparent reports whether the group has no name.
func (g *Group) Transparent() bool {
	return g.name == ""
}

// Value exports the current values of all descendants.
func (g *Group) Value() any {
	values := Values{}
	for _, c := range g.children {
		c.export(values)
	}
	return values
}

// Lookup finds a descendant by name path. Transparent groups are looked
// through, so their children are addressed as if they were direct children.
func (g *Group) Lookup(path ...string) (Control, bool) {
	if len(path) == 0 {
		return nil, false
	}
	c, ok := g.child(path[0])
	if !ok {
		return nil, false
	}
	if len(path) == 1 {
		return c, true
	}
	sub, ok := c.(*Group)
	if !ok {
		return nil, false
	}
	return sub.Lookup(path[1:]...)
}

func (g *Group) child(name string) (Control, bool) {
	for _, c := range g.children {
		if c.Name() == name && name != "" {
			return c, true
		}
		if sub, ok := c.(*Group); ok && sub.Transparent() {
			if found, ok := sub.child(name); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// walk visits the group and its descendants in pre-order.
func (g *Group) walk(fn func(Control)) {
	fn(g)
	for _, c := range g.children {
		if sub, ok := c.(*Group); ok {
			sub.walk(fn)
			continue
		}
		fn(c)
	}
}

func (g *Group) setValue(v any) {
	sub := scope(v)
	for _, c := range g.children {
		c.load(sub, false)
	}
}

func (g *Group) prepare(parentPath string, inherited obfuscate.Obfuscator, frozen bool, ancestors map[*Group]bool) error {
	if ancestors[g] {
		return fmt.Errorf("%w: %q", ErrCycle, g.name)
	}
	ancestors[g] = true
	defer delete(ancestors, g)

	g.preparePath(parentPath, inherited, frozen)

	errs := []error{g.configError()}
	for _, c := range g.children {
		errs = append(errs, c.prepare(g.path, g.effective, g.frozen, ancestors))
	}
	return errors.Join(errs...)
}

func (g *Group) reconcile(s Values, p *pass) (Values, ChangedSet) {
	sub := s
	if !g.Transparent() {
		sub = scope(s[g.key])
	}
	if len(g.cleaners) > 0 {
		sub = scope(g.cleanScope(map[string]any(sub)))
	}

	var values Values
	var changed ChangedSet
	for _, c := range g.children {
		v, cs := c.reconcile(sub, p)
		values = merge(values, v)
		changed = merge(changed, cs)
	}

	if g.Transparent() {
		return values, changed
	}

	var outValues Values
	var outChanged ChangedSet
	if len(values) > 0 {
		outValues = Values{g.name: values}
	}
	if len(changed) > 0 {
		outChanged = ChangedSet{g.name: changed}
	}
	return outValues, outChanged
}

// cleanScope runs the group's cleaners over its sub-map. Tag cleaners are
// scalar cleaners and are applied to each nested value.
func (g *Group) cleanScope(v any) any {
	for _, c := range g.cleaners {
		if t, ok := c.(tagged); ok {
			c = sanitizer.Each(t.Cleaner)
		}
		v = c.Clean(v)
	}
	return v
}

func (g *Group) load(values Values, merge bool) {
	sub := values
	if !g.Transparent() {
		v, ok := values[g.name]
		if !ok && merge {
			return
		}
		sub = scope(v)
	}
	for _, c := range g.children {
		c.load(sub, merge)
	}
}

func (g *Group) export(values Values) {
	if g.Transparent() {
		for _, c := range g.children {
			c.export(values)
		}
		return
	}
	values[g.name] = g.Value()
}

// validate checks children first; the group's own validators run only when
// every child passed.
func (g *Group) validate() []Control {
	var invalid []Control
	for _, c := range g.children {
		invalid = append(invalid, c.validate()...)
	}
	if len(invalid) > 0 {
		g.errors = nil
		return invalid
	}
	if !g.runValidators() {
		return []Control{g}
	}
	return nil
}
