package form

import "github.com/dmitrymomot/forms/pkg/obfuscate"

// CheckboxSet is one control with many options posted under one submit key.
// Its value maps the canonical key of every option to its checked state.
type CheckboxSet struct {
	choice
}

// NewCheckboxSet creates a checkbox set over options. Options whose Checked
// flag is set start checked unless WithValue overrides them.
func NewCheckboxSet(name string, options []*Option, opts ...ControlOption) *CheckboxSet {
	c := &CheckboxSet{}
	c.leaf = newLeaf(name, opts)
	c.options = options
	c.value = c.states()
	c.init(c)
	return c
}

// State returns the checked state of every option keyed by canonical option key.
func (c *CheckboxSet) State() map[string]bool {
	state, _ := c.value.(map[string]bool)
	return state
}

// Checked returns the keys of the checked options in option order.
func (c *CheckboxSet) Checked() []any {
	var keys []any
	for _, opt := range c.options {
		if opt.Checked {
			keys = append(keys, opt.Key)
		}
	}
	return keys
}

func (c *CheckboxSet) states() map[string]bool {
	state := make(map[string]bool, len(c.options))
	for _, opt := range c.options {
		state[Canonical(opt.Key)] = opt.Checked
	}
	return state
}

// setValue accepts a map of key to state or a list of checked keys.
// Options missing from v are unchecked.
func (c *CheckboxSet) setValue(v any) {
	checked := map[string]bool{}
	switch vv := v.(type) {
	case map[string]bool:
		for k, on := range vv {
			checked[k] = on
		}
	case map[string]any:
		for k, on := range vv {
			checked[k] = truthy(on)
		}
	case Values:
		for k, on := range vv {
			checked[k] = truthy(on)
		}
	case []any:
		for _, k := range vv {
			checked[Canonical(k)] = true
		}
	case []string:
		for _, k := range vv {
			checked[k] = true
		}
	case nil:
	default:
		checked[Canonical(vv)] = true
	}

	for _, opt := range c.options {
		opt.Checked = checked[Canonical(opt.Key)]
	}
	c.value = c.states()
}

func (c *CheckboxSet) prepare(parentPath string, inherited obfuscate.Obfuscator, frozen bool, ancestors map[*Group]bool) error {
	return c.prepareChoice(parentPath, inherited, frozen, ancestors)
}

// reconcile visits every option, not only the submitted ones: a present
// code means checked and an absent one unchecked. The whitelist always
// holds an entry for every option.
func (c *CheckboxSet) reconcile(s Values, _ *pass) (Values, ChangedSet) {
	sub, _ := asMap(s[c.key])

	next := make(map[string]bool, len(c.options))
	for i, opt := range c.options {
		v, present := sub[c.codes[i]]
		next[Canonical(opt.Key)] = present && v != nil
	}

	prev := c.State()
	if c.frozen {
		for k, on := range next {
			if prev[k] != on {
				return nil, nil
			}
		}
		return Values{c.name: c.states()}, nil
	}

	var changed ChangedSet
	for _, opt := range c.options {
		k := Canonical(opt.Key)
		if prev[k] != next[k] {
			if changed == nil {
				changed = ChangedSet{}
			}
			changed[k] = c
		}
		opt.Checked = next[k]
	}
	c.value = next

	var cs ChangedSet
	if changed != nil {
		cs = ChangedSet{c.name: changed}
	}
	out := make(map[string]bool, len(next))
	for k, on := range next {
		out[k] = on
	}
	return Values{c.name: out}, cs
}
