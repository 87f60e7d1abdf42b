// Package template defines the output page documents (FAQ, product,
// comparison) and the builders that assemble them from agent results.
//
// Builders validate their inputs and stamp the page type so downstream
// validation and persistence can rely on a fixed shape. A missing required
// field surfaces as *FieldError naming the page, field and list position.
package template
