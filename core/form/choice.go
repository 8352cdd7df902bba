package form

import "github.com/dmitrymomot/forms/pkg/obfuscate"

// Option is one choice of a grouped-choice control.
// Key is the stable identity; Attrs are free-form render attributes.
// Checked is maintained by the owning control.
type Option struct {
	Key     any
	Label   string
	Attrs   map[string]any
	Checked bool
}

// NewOption creates an option.
func NewOption(key any, label string) *Option {
	return &Option{Key: key, Label: label}
}

// choice is the state shared by controls keyed by option identity.
type choice struct {
	leaf
	options []*Option
	codes   []string
}

// Options returns the backing option list.
func (c *choice) Options() []*Option {
	return c.options
}

// prepareCodes computes the public code of every option.
func (c *choice) prepareCodes() {
	c.codes = make([]string, len(c.options))
	for i, opt := range c.options {
		c.codes[i] = c.encode(Canonical(opt.Key))
	}
}

// Code returns the public code of the option with the given key as of the last Prepare.
func (c *choice) Code(key any) (string, bool) {
	want := Canonical(key)
	for i, opt := range c.options {
		if Canonical(opt.Key) == want && i < len(c.codes) {
			return c.codes[i], true
		}
	}
	return "", false
}

func (c *choice) prepareChoice(parentPath string, inherited obfuscate.Obfuscator, frozen bool, ancestors map[*Group]bool) error {
	if err := c.leaf.prepare(parentPath, inherited, frozen, ancestors); err != nil {
		return err
	}
	c.prepareCodes()
	return nil
}

// single selects at most one option. RadioSet and Select share it.
type single struct {
	choice
}

// Selected returns the selected option, or nil.
func (s *single) Selected() *Option {
	if s.value == nil {
		return nil
	}
	want := Canonical(s.value)
	for _, opt := range s.options {
		if Canonical(opt.Key) == want {
			return opt
		}
	}
	return nil
}

// setValue stores the key of the option matching v, or nil when none matches.
func (s *single) setValue(v any) {
	var matched *Option
	if v != nil {
		want := Canonical(v)
		for _, opt := range s.options {
			if Canonical(opt.Key) == want {
				matched = opt
				break
			}
		}
	}
	s.check(matched)
}

func (s *single) check(matched *Option) {
	s.value = nil
	if matched != nil {
		s.value = matched.Key
	}
	for _, opt := range s.options {
		opt.Checked = opt == matched
	}
}

func (s *single) prepare(parentPath string, inherited obfuscate.Obfuscator, frozen bool, ancestors map[*Group]bool) error {
	return s.prepareChoice(parentPath, inherited, frozen, ancestors)
}

// reconcile matches the submitted code against the options in order. The
// first match wins and stores the option key. No match resets the value to
// nil, which is still whitelisted.
func (s *single) reconcile(sc Values, _ *pass) (Values, ChangedSet) {
	raw, present := scalar(sc, s.key)

	var matched *Option
	if code := Canonical(raw); present && code != "" {
		for i, opt := range s.options {
			if s.codes[i] == code {
				matched = opt
				break
			}
		}
	}

	var key any
	if matched != nil {
		key = matched.Key
	}

	if s.frozen {
		if matched == nil {
			return nil, nil
		}
		return s.fixed(key, true)
	}

	changed := Canonical(s.value) != Canonical(key)
	s.check(matched)
	return s.accepted(key, changed)
}

// RadioSet is a group of radio buttons sharing one submit key.
type RadioSet struct {
	single
}

// NewRadioSet creates a radio set over options.
func NewRadioSet(name string, options []*Option, opts ...ControlOption) *RadioSet {
	r := &RadioSet{}
	r.leaf = newLeaf(name, opts)
	r.options = options
	r.init(r)
	return r
}

// Select is a single-choice list. An optional prompt renders as an empty
// first entry that never matches a submission.
type Select struct {
	single
	prompt string
}

// NewSelect creates a select over options.
func NewSelect(name string, options []*Option, opts ...ControlOption) *Select {
	s := &Select{}
	s.leaf = newLeaf(name, opts)
	s.options = options
	s.init(s)
	return s
}

// WithPrompt sets the label of the empty entry.
func (s *Select) WithPrompt(label string) *Select {
	s.prompt = label
	return s
}

// Prompt returns the empty entry label.
func (s *Select) Prompt() string {
	return s.prompt
}
