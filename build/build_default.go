package build

// Deployment selects which of the Development/Production logging and
// testing-hook behavior NewSubLogger and friends exhibit. The filtering core
// itself never branches on this; it only affects the demo CLI's logger setup.
var Deployment = Development

// LogLevel is the default level assigned to subsystem loggers created via
// NewSubLogger's LogTypeStdOut branch. With LoggingType set to
// LogTypeDefault that branch is not taken, so package tests run with
// disabled loggers.
var LogLevel = "info"
