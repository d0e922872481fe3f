// Package result gathers the okerr surface under one name.
//
// Constructors, adapters, the normalizer, the typed helper and the guard are
// forwarded from okerr and adapt. AsyncUnwrap and AsyncMap work on a deferred
// Result without waiting for it.
package result
