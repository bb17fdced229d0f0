// Parses flags and configures logging for the sharedfx command.
//
// The command accepts the following global flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output and stream external tool output.
//	-d, --debug     Enable debug output.
//	-c, --config    Settings file (default ./sharedfx.toml if present).
//
// and the subcommands publish, rid and version. Quiet and debug exclude each
// other. Flags override build-time
// defaults set via linker flags. After parsing, the global logger is
// replaced with one at the final level before the subcommand runs.
package cli
