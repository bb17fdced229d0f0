// Package fsutil holds the filesystem primitives the publisher composes:
// scoped directory resets, recursive tree copies and overwriting file
// copies. Every operation completes synchronously so the next pipeline step
// observes its effects.
package fsutil
