package main

// Version is reported by --version. Release builds override it with
// -ldflags "-X main.Version=...".
var Version = "0.1.0"
