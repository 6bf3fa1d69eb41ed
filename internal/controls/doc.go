// Package controls implements the externally editable parameters.
//
// A [Field] is a text entry with apply, increment and decrement actions.
// A [Slider] maps an integer position onto a parameter. Both write through
// a pointer into [wave.Params] and always leave the parameter inside its
// declared range: invalid input is replaced by the field's fallback value,
// steps saturate at the bounds.
package controls
