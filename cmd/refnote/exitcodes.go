package main

// Exit codes shared by all refnote commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (no vault, invalid config value)
	ExitDataError   = 3 // Data error (malformed paste, missing citation key)
)
