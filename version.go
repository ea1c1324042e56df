package topogi

// Version is the interpreter release, printed by the CLI.
const Version = "0.1.0"

// BuildDate is stamped at link time via
// -ldflags "-X github.com/topogi-org/topogi-lang.BuildDate=...".
var BuildDate = "unknown"
