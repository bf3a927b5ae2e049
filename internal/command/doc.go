// Package command models the stream-tracking graph behind one transcoding
// invocation.
//
// A Pipeline owns Commands. A Command registers input resources, each of
// which yields a Receipt naming its stream. Receipts are grouped into a Stage,
// threaded through Filterchains that allocate new receipts per output pad, and
// finally bound to output destinations. Every selection and registration is
// checked against the owning Pipeline's command registry so that receipts can
// never leak between commands.
//
// The graph is built in memory and is not safe for concurrent mutation of a
// single Command. The Pipeline registry itself is guarded so independent
// commands may be created from several goroutines.
package command
