package cli

// RunWithOutput runs the CLI with the given stdout and stderr
var RunWithOutput = run
