package version

// Version may be overridden at build time with
// -ldflags "-X seqcomplex/internal/version.Version=...".
var Version = "0.2.0"
