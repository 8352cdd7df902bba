package form

// Checkbox is an on/off control. Its value is always a bool.
type Checkbox struct {
	leaf
}

// NewCheckbox creates a checkbox.
func NewCheckbox(name string, opts ...ControlOption) *Checkbox {
	c := &Checkbox{leaf: newLeaf(name, opts)}
	c.value = false
	c.init(c)
	return c
}

// Checked reports the current state.
func (c *Checkbox) Checked() bool {
	checked, _ := c.value.(bool)
	return checked
}

func (c *Checkbox) setValue(v any) {
	c.value = truthy(v)
}

// reconcile treats any non-empty submitted value as checked. Cleaners do not apply.
func (c *Checkbox) reconcile(s Values, _ *pass) (Values, ChangedSet) {
	raw, present := scalar(s, c.key)
	checked := present && Canonical(raw) != ""

	if c.frozen {
		return c.fixed(checked, true)
	}

	changed := checked != c.Checked()
	c.value = checked
	return c.accepted(checked, changed)
}
