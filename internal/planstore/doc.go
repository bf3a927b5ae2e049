// Package planstore persists built command plans in SQLite.
//
// Each record stores a plan snapshot as JSON along with its status. Builds
// that fail are recorded too, with the failure classified by error kind so
// that plans needing an edit can be told apart from plans that only need a
// retry (for example after a probe failure).
//
// The store holds an exclusive file lock next to the database for as long as
// it is open.
package planstore
