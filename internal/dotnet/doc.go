// Package dotnet invokes the .NET build tool and the crossgen ahead-of-time
// compiler.
//
// [CLI] wraps the restore and publish verbs of the dotnet executable. It
// returns the raw [command.Result]; checking the exit code is the caller's
// job. [Crossgen] compiles every managed assembly of a directory to
// ready-to-run code in place.
//
// Example usage:
//
//	cli := dotnet.CLI{Runner: command.Exec{}, Path: "dotnet"}
//	result, err := cli.Restore(ctx, projectDir, "--infer-runtimes")
//	if err != nil {
//	    return err
//	}
//	if err := result.Check("dotnet restore"); err != nil {
//	    return err
//	}
//
//	cg := dotnet.Crossgen{Runner: command.Exec{}, Path: crossgenPath}
//	if err := cg.CompileDirectory(ctx, bundle, bundle); err != nil {
//	    return err
//	}
package dotnet
