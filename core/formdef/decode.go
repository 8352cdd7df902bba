package formdef

import (
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"

	"github.com/dmitrymomot/forms/core/form"
)

// decoder accumulates diagnostics while turning blocks into controls.
type decoder struct {
	loader *Loader
	diags  hcl.Diagnostics
	err    error
}

// decode evaluates a literal attribute into target.
func (d *decoder) decode(attr *hcl.Attribute, target any) bool {
	diags := gohcl.DecodeExpression(attr.Expr, nil, target)
	d.diags = append(d.diags, diags...)
	return !diags.HasErrors()
}

// value evaluates a literal attribute into its Go form.
func (d *decoder) value(attr *hcl.Attribute) (any, bool) {
	val, diags := attr.Expr.Value(nil)
	d.diags = append(d.diags, diags...)
	if diags.HasErrors() {
		return nil, false
	}
	v, err := toNative(val)
	if err != nil {
		d.diags = append(d.diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported value",
			Detail:   err.Error(),
			Subject:  attr.Expr.Range().Ptr(),
		})
		return nil, false
	}
	return v, true
}

// commonOptions decodes the attributes every control accepts.
func (d *decoder) commonOptions(attrs hcl.Attributes) []form.ControlOption {
	var opts []form.ControlOption
	if attr, ok := attrs["clean"]; ok {
		var names []string
		if d.decode(attr, &names) {
			opts = append(opts, form.WithClean(strings.Join(names, ",")))
		}
	}
	if attr, ok := attrs["validate"]; ok {
		var tag string
		if d.decode(attr, &tag) {
			opts = append(opts, form.WithRules(tag))
		}
	}
	if attr, ok := attrs["immutable"]; ok {
		var immutable bool
		if d.decode(attr, &immutable) {
			opts = append(opts, form.WithImmutable(immutable))
		}
	}
	return opts
}

// controls decodes blocks in source order.
func (d *decoder) controls(blocks hcl.Blocks) []form.Control {
	out := make([]form.Control, 0, len(blocks))
	for _, block := range blocks {
		if c := d.control(block); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (d *decoder) control(block *hcl.Block) form.Control {
	name := block.Labels[0]

	if block.Type == blockGroup {
		content, diags := block.Body.Content(groupSchema)
		d.diags = append(d.diags, diags...)
		if diags.HasErrors() {
			return nil
		}
		return form.NewGroup(name, d.commonOptions(content.Attributes)...).Add(d.controls(content.Blocks)...)
	}

	schema, ok := leafSchemas[block.Type]
	if !ok {
		return nil
	}
	content, diags := block.Body.Content(schema)
	d.diags = append(d.diags, diags...)
	if diags.HasErrors() {
		return nil
	}

	opts := d.commonOptions(content.Attributes)
	value, hasValue := any(nil), false
	if attr, ok := content.Attributes["value"]; ok {
		value, hasValue = d.value(attr)
	}

	switch block.Type {
	case blockText:
		if hasValue {
			opts = append(opts, form.WithValue(value))
		}
		return form.NewText(name, opts...)
	case blockHidden:
		return form.NewMarker(name, value, opts...)
	case blockNumber:
		if hasValue {
			opts = append(opts, form.WithValue(value))
		}
		return d.number(name, content.Attributes, opts)
	case blockCheckbox:
		if hasValue {
			opts = append(opts, form.WithValue(value))
		}
		return form.NewCheckbox(name, opts...)
	case blockButton:
		return form.NewButton(name, value, opts...)
	case blockSubmit:
		return d.submit(block, name, value, content.Attributes, opts)
	case blockFile:
		return form.NewFile(name, opts...)
	case blockFiles:
		return form.NewMultiFile(name, opts...)
	}

	if hasValue {
		opts = append(opts, form.WithValue(value))
	}
	options := d.options(content.Blocks)
	switch block.Type {
	case blockCheckboxSet:
		return form.NewCheckboxSet(name, options, opts...)
	case blockRadio:
		return form.NewRadioSet(name, options, opts...)
	default:
		sel := form.NewSelect(name, options, opts...)
		if attr, ok := content.Attributes["prompt"]; ok {
			var prompt string
			if d.decode(attr, &prompt) {
				sel.WithPrompt(prompt)
			}
		}
		return sel
	}
}

func (d *decoder) number(name string, attrs hcl.Attributes, opts []form.ControlOption) form.Control {
	n := form.NewNumber(name, opts...)
	minAttr, hasMin := attrs["min"]
	maxAttr, hasMax := attrs["max"]
	if !hasMin && !hasMax {
		return n
	}

	lo, hi := -math.MaxFloat64, math.MaxFloat64
	if hasMin && !d.decode(minAttr, &lo) {
		return n
	}
	if hasMax && !d.decode(maxAttr, &hi) {
		return n
	}
	return n.SetRange(lo, hi)
}

func (d *decoder) submit(block *hcl.Block, name string, value any, attrs hcl.Attributes, opts []form.ControlOption) form.Control {
	handler := d.loader.fallback
	if attr, ok := attrs["handler"]; ok {
		var ref string
		if !d.decode(attr, &ref) {
			return nil
		}
		h, ok := d.loader.handlers[ref]
		if !ok {
			d.err = fmt.Errorf("%w: %q in %s", ErrUnknownHandler, ref, block.DefRange)
			return nil
		}
		handler = h
	}
	return form.NewSubmitButton(name, value, handler, opts...)
}

func (d *decoder) options(blocks hcl.Blocks) []*form.Option {
	out := make([]*form.Option, 0, len(blocks))
	for _, block := range blocks.OfType(blockOption) {
		content, diags := block.Body.Content(optionSchema)
		d.diags = append(d.diags, diags...)
		if diags.HasErrors() {
			continue
		}

		key, ok := d.key(content.Attributes["key"])
		if !ok {
			continue
		}
		opt := form.NewOption(key, "")
		if attr, ok := content.Attributes["label"]; ok {
			d.decode(attr, &opt.Label)
		}
		if attr, ok := content.Attributes["checked"]; ok {
			d.decode(attr, &opt.Checked)
		}
		out = append(out, opt)
	}
	return out
}

// key evaluates an option key. Keys must be strings, numbers or bools.
func (d *decoder) key(attr *hcl.Attribute) (any, bool) {
	val, diags := attr.Expr.Value(nil)
	d.diags = append(d.diags, diags...)
	if diags.HasErrors() {
		return nil, false
	}
	if t := val.Type(); val.IsNull() || (t != cty.String && t != cty.Number && t != cty.Bool) {
		d.diags = append(d.diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid option key",
			Detail:   "An option key must be a string, number or bool.",
			Subject:  attr.Expr.Range().Ptr(),
		})
		return nil, false
	}
	v, err := toNative(val)
	return v, err == nil
}
