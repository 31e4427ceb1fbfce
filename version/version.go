package version

// Version is the mkarray release. It is overridden at build time with
// -ldflags "-X github.com/mkarray/mkarray/version.Version=...".
var Version = "dev"
