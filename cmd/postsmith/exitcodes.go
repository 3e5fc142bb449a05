package main

// Exit codes for the postsmith CLI.
const (
	ExitOK               = 0 // Post generated (or command completed) successfully.
	ExitInvalidArgs      = 1 // Invalid arguments, bad config, or missing API key.
	ExitGenerationFailed = 2 // Provider call or post validation failed.
)
