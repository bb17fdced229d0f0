// Package platform resolves the runtime identifier (rid) a shared framework
// bundle is published for.
//
// A [Host] describes an operating system family, a CPU architecture and,
// where it matters, the OS release. Hosts are obtained either from the
// running machine with [Detect] or from an "os/arch" specifier with
// [FromSpecifier]. Families form a closed set; every branch over them is
// exhaustive and the [Unsupported] family always yields an error rather than
// a guessed default.
//
// Windows hosts always resolve to the legacy-compatible "win7-<arch>" rid so
// the produced bundle runs on every supported Windows version. Other
// families resolve to their natural rid, which includes the distribution or
// OS version when it is known.
//
// Example usage:
//
//	host, err := platform.Detect()
//	if err != nil {
//	    return err
//	}
//
//	rid, err := host.RID()
//	if err != nil {
//	    return err
//	}
package platform
