package version

// Version is the motifscan release version.
const Version = "0.3.1"
