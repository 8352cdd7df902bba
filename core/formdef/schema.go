package formdef

import "github.com/hashicorp/hcl/v2"

// Block types of control definitions.
const (
	blockText        = "text"
	blockNumber      = "number"
	blockHidden      = "hidden"
	blockCheckbox    = "checkbox"
	blockButton      = "button"
	blockSubmit      = "submit"
	blockFile        = "file"
	blockFiles       = "files"
	blockCheckboxSet = "checkbox_set"
	blockRadio       = "radio"
	blockSelect      = "select"
	blockGroup       = "group"
	blockOption      = "option"
)

var controlBlocks = []hcl.BlockHeaderSchema{
	{Type: blockText, LabelNames: []string{"name"}},
	{Type: blockNumber, LabelNames: []string{"name"}},
	{Type: blockHidden, LabelNames: []string{"name"}},
	{Type: blockCheckbox, LabelNames: []string{"name"}},
	{Type: blockButton, LabelNames: []string{"name"}},
	{Type: blockSubmit, LabelNames: []string{"name"}},
	{Type: blockFile, LabelNames: []string{"name"}},
	{Type: blockFiles, LabelNames: []string{"name"}},
	{Type: blockCheckboxSet, LabelNames: []string{"name"}},
	{Type: blockRadio, LabelNames: []string{"name"}},
	{Type: blockSelect, LabelNames: []string{"name"}},
	{Type: blockGroup, LabelNames: []string{"name"}},
}

// common attributes accepted by every control block.
var commonAttrs = []hcl.AttributeSchema{
	{Name: "clean"},
	{Name: "validate"},
	{Name: "immutable"},
}

// fileSchema is the top-level body: an optional form name and controls.
var fileSchema = &hcl.BodySchema{
	Attributes: append([]hcl.AttributeSchema{{Name: "name"}}, commonAttrs...),
	Blocks:     controlBlocks,
}

var groupSchema = &hcl.BodySchema{
	Attributes: commonAttrs,
	Blocks:     controlBlocks,
}

var optionSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "key", Required: true},
		{Name: "label"},
		{Name: "checked"},
	},
}

// leafSchemas lists the extra attributes and nested blocks of each leaf block type.
var leafSchemas = map[string]*hcl.BodySchema{
	blockText:        leafSchema("value"),
	blockNumber:      leafSchema("value", "min", "max"),
	blockHidden:      leafSchema("value"),
	blockCheckbox:    leafSchema("value"),
	blockButton:      leafSchema("value"),
	blockSubmit:      leafSchema("value", "handler"),
	blockFile:        leafSchema(),
	blockFiles:       leafSchema(),
	blockCheckboxSet: choiceSchema("value"),
	blockRadio:       choiceSchema("value"),
	blockSelect:      choiceSchema("value", "prompt"),
}

func leafSchema(extra ...string) *hcl.BodySchema {
	attrs := append([]hcl.AttributeSchema{}, commonAttrs...)
	for _, name := range extra {
		attrs = append(attrs, hcl.AttributeSchema{Name: name})
	}
	return &hcl.BodySchema{Attributes: attrs}
}

func choiceSchema(extra ...string) *hcl.BodySchema {
	s := leafSchema(extra...)
	s.Blocks = []hcl.BlockHeaderSchema{{Type: blockOption}}
	return s
}
