package readinput

// Version is the library version reported by the readinput CLI.
var Version = "0.3.0"
