package types

// Version is the application version, overridden at build time via -ldflags
var Version = "dev"

// AppName is the command name shown in help and logs
const AppName = "oskpack"
