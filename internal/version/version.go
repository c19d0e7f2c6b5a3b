package version

// Version is the build version shown by --version. Release builds override
// it with -ldflags "-X github.com/studiowebux/markpad/internal/version.Version=...".
var Version = "0.1.0"
