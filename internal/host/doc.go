// Package host copies the native host components into a shared framework
// bundle.
//
// Four files make up the host: the muxer executable (dotnet), a copy of it
// under the legacy corehost name, the host resolver (hostfxr) and the host
// policy (hostpolicy). The first three come from the locked host build. The
// policy library comes from the latest host build instead, because its
// interface to the runtime evolves with the framework and must track the
// framework's own version rather than a pinned host.
//
// Copies overwrite existing files and are verified against the digest of
// the source content.
package host
