// Package deps edits the dependency manifest (*.deps.json) produced by the
// build tool's publish operation.
//
// A publish of the scratch project yields an application-shaped output: a
// "framework.deps.json" whose first library in every target is the scratch
// project itself (the entry point), plus the project's own binaries. The
// functions here turn that into a framework-shaped bundle: build outputs of
// the scratch project are removed, the manifest is renamed after the shared
// framework, and the entry-point library is dropped so the manifest does not
// claim to describe an application.
//
// The manifest schema belongs to the .NET tooling. Only the targets,
// libraries and runtimes sections are read or written; everything else is
// carried through untouched.
package deps
