// Package publish assembles a shared framework bundle.
//
// [New] resolves the target runtime identifier once and materializes the
// framework project from its template. [Publisher.Publish] then runs a fixed
// sequence of steps against a single output directory:
//
//	restore         restore the project's packages
//	reset           delete any previous bundle
//	publish         publish the project for the rid into the bundle
//	clean           delete application-only publish outputs
//	rename-deps     rename the dependency manifest after the framework
//	entry-point     remove the entry-point library from the manifest
//	runtime-graph   add the runtime fallback graph to the manifest
//	host-artifacts  copy the native host into the bundle
//	prune-il        drop IL mscorlib when a native image is present
//	crossgen        compile the bundle's assemblies ahead of time
//	stamp-version   write the .version provenance file
//
// Each step consumes what the previous one left on disk. The first failure
// stops the run and is returned as a [*StepError] naming the step. A failed
// run may leave a partial bundle behind; the next run deletes it.
//
// Example usage:
//
//	p, err := publish.New(publish.Options{
//	    Framework:     "Microsoft.NETCore.App",
//	    Version:       "3.0.0",
//	    Host:          host,
//	    RepoRoot:      repo,
//	    Intermediate:  paths.Intermediate(),
//	    PackageSource: source,
//	    HostDirs:      host.Dirs{Locked: locked, Latest: latest},
//	    ToolsOutput:   paths.Tools(),
//	    Runner:        command.Exec{},
//	    Compiler:      dotnet.Crossgen{Runner: command.Exec{}, Path: crossgen},
//	})
//	if err != nil {
//	    return err
//	}
//	bundle, err := p.Publish(ctx, "artifacts", commit, dotnet.CLI{Runner: command.Exec{}, Path: "dotnet"})
package publish
