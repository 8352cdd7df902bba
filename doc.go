// Package forms is the index of a toolkit for server-side web forms: a
// control tree that reconciles untrusted submissions into a whitelist of
// accepted values and a set of changed controls.
//
// # Package Organization
//
//   - Core: the control tree and the collaborators it calls
//   - Utilities: standalone packages the core depends on
//   - Commands: tools built on the core
//
// # Getting Documentation
//
//	go doc github.com/dmitrymomot/forms/core/form
//	go doc -all github.com/dmitrymomot/forms/core/formdef
//
// # Core Packages
//
// github.com/dmitrymomot/forms/core/form
//
// Control tree (text, number, checkbox, button, file, checkbox set, radio
// set, select, groups), reconciliation, seeding, export and validation.
//
// github.com/dmitrymomot/forms/core/formdef
//
// Builds forms from HCL definitions.
//
// github.com/dmitrymomot/forms/core/sanitizer
//
// Cleaners applied to submitted values and a registry of named cleaners.
//
// github.com/dmitrymomot/forms/core/validator
//
// Tag-driven validation rules used by form validators.
//
// github.com/dmitrymomot/forms/core/binder
//
// Reads multipart uploads into the descriptor table used by reconciliation.
//
// github.com/dmitrymomot/forms/core/config
//
// Type-safe environment configuration with caching.
//
// github.com/dmitrymomot/forms/core/logger
//
// slog construction and attribute helpers.
//
// # Utilities
//
// github.com/dmitrymomot/forms/pkg/obfuscate
//
// Reversible obfuscation of control names and option keys: signed, sealed
// and prefixed tokens.
//
// # Commands
//
// github.com/dmitrymomot/forms/cmd/formcheck
//
// Reconciles a JSON submission against an HCL definition and reports the result.
package forms
