// Package project materializes the shared framework project from its
// template.
//
// The template tree is copied into a scratch directory and its descriptor
// (project.json.template) is rewritten into project.json: the framework
// dependency is pinned to the version being published and the runtimes
// collection is replaced by a single entry for the target rid. The copied
// template file is removed so the scratch project only carries the
// generated descriptor.
//
// Example usage:
//
//	dir, err := project.Materialize(project.Options{
//	    Template:  "src/sharedframework/framework",
//	    Dir:       "obj/sharedFramework/framework",
//	    Framework: "Microsoft.NETCore.App",
//	    Version:   "3.0.0",
//	    RID:       "linux-x64",
//	})
package project
