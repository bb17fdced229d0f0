package host

import "github.com/cruciblehq/sharedfx/internal/platform"

// Source directory an artifact is taken from.
type Source int

const (
	Locked Source = iota // Pinned host build.
	Latest               // Host build tracking the framework version.
)

func (s Source) String() string {
	if s == Latest {
		return "latest"
	}
	return "locked"
}

// A host file and where it goes.
type Artifact struct {
	Name   string // File name in the source directory.
	Target string // File name in the bundle.
	Source Source // Directory the file is read from.
}

// Host files for one platform family.
type ArtifactSet []Artifact

// Returns the host artifacts for a platform family.
//
//	dotnet[.exe]     from locked, as dotnet[.exe]
//	dotnet[.exe]     from locked, as corehost[.exe]
//	hostfxr library  from locked
//	hostpolicy lib   from latest
func ForFamily(f platform.Family) ArtifactSet {
	exe := "dotnet" + f.ExeSuffix()
	fxr := f.SharedLibrary("hostfxr")
	policy := f.SharedLibrary("hostpolicy")

	return ArtifactSet{
		{Name: exe, Target: exe, Source: Locked},
		{Name: exe, Target: "corehost" + f.ExeSuffix(), Source: Locked},
		{Name: fxr, Target: fxr, Source: Locked},
		{Name: policy, Target: policy, Source: Latest},
	}
}

// Returns the bundle file names of the set, in copy order.
func (s ArtifactSet) Targets() []string {
	names := make([]string, len(s))
	for i, a := range s {
		names[i] = a.Target
	}
	return names
}
