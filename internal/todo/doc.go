// Package todo holds the in-memory to-do state: an item store keyed by
// identifier, the ordered identifier list, the filter selector, and the
// filtered view derived from them.
//
// # State container
//
// State is the single owner of those structures. It is constructed explicitly
// (NewState) and passed by reference to whatever renders or mutates it; there
// is no package-level instance.
//
// All mutation goes through State's operations (Submit, Toggle, Remove,
// SetFilter). Each successful mutation is applied fully and then announced to
// listeners registered with OnChange, synchronously and in registration order.
//
// # Derived view
//
// Visible is pull-based: it recomputes the filtered identifier list from the
// current list, filter and item flags on every call and keeps no cache.
//
// # Concurrency
//
// State is not safe for concurrent use. The terminal UI serialises every
// mutation through its Update loop, which is the only caller.
package todo
