// Package command runs external tools and captures their outcome.
//
// A [Cmd] names the program, its arguments, working directory and
// environment overrides. A [Runner] executes it synchronously and returns a
// [Result] carrying the exit code and captured output. A non-zero exit code
// is not an error at the Runner level; callers check it explicitly with
// [Result.Check], which surfaces the tool's diagnostics.
//
// Example usage:
//
//	result, err := command.Exec{}.Run(ctx, command.Cmd{
//	    Path: "dotnet",
//	    Args: []string{"--info"},
//	})
//	if err != nil {
//	    return err
//	}
//	if err := result.Check("dotnet --info"); err != nil {
//	    return err
//	}
package command
