// Package settings models the role-tagged configuration bundles attached to
// command inputs and outputs.
//
// A Collection is either an Input or an Output collection and carries an
// ordered list of opaque name/value entries. The command graph only inspects
// the role; the entries are passed through untouched to whatever layer turns a
// plan into tool arguments.
package settings
