package formdef

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/dmitrymomot/forms/core/form"
	"github.com/dmitrymomot/forms/core/logger"
	"github.com/dmitrymomot/forms/pkg/obfuscate"
)

// Loader builds forms from HCL definitions.
type Loader struct {
	handlers   map[string]form.Handler
	fallback   form.Handler
	obfuscator obfuscate.Obfuscator
	logger     *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHandler registers the handler a submit block refers to by name.
func WithHandler(name string, h form.Handler) Option {
	return func(l *Loader) {
		l.handlers[name] = h
	}
}

// WithDefaultHandler sets the handler used by submit blocks without a
// handler attribute.
func WithDefaultHandler(h form.Handler) Option {
	return func(l *Loader) {
		l.fallback = h
	}
}

// WithObfuscator attaches an obfuscator to the root of every loaded form.
func WithObfuscator(o obfuscate.Obfuscator) Option {
	return func(l *Loader) {
		l.obfuscator = o
	}
}

// WithLogger sets the logger passed to loaded forms.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.logger = log
		}
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		handlers: map[string]form.Handler{},
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile parses the definition in path.
func (l *Loader) LoadFile(path string) (*form.Form, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrDefinition, diags)
	}
	return l.build(file.Body, path)
}

// Parse parses a definition held in memory. filename is used in diagnostics.
func (l *Loader) Parse(src []byte, filename string) (*form.Form, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrDefinition, diags)
	}
	return l.build(file.Body, filename)
}

func (l *Loader) build(body hcl.Body, filename string) (*form.Form, error) {
	content, diags := body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrDefinition, diags)
	}

	d := &decoder{loader: l}

	var name string
	if attr, ok := content.Attributes["name"]; ok {
		d.decode(attr, &name)
	}
	rootOpts := d.commonOptions(content.Attributes)
	if l.obfuscator != nil {
		rootOpts = append(rootOpts, form.WithObfuscator(l.obfuscator))
	}
	controls := d.controls(content.Blocks)

	if d.diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrDefinition, d.diags)
	}
	if d.err != nil {
		return nil, d.err
	}

	f := form.New(form.WithName(name), form.WithLogger(l.logger), form.WithRoot(rootOpts...))
	f.Add(controls...)

	l.logger.Debug("form definition loaded",
		logger.Component("formdef"),
		logger.Form(name),
		logger.Key("file", filename),
		logger.Count("controls", len(controls)),
	)
	return f, nil
}
