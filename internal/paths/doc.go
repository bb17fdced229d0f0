// Provides default scratch and tool locations for sharedfx.
//
// Paths follow XDG conventions on Linux and platform-native cache locations
// on macOS and Windows. Everything lives under a "sharedfx" subdirectory of
// the user cache home, so removing that directory resets all scratch state.
package paths
