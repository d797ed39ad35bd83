package main

// Version is stamped by the release build; "dev" otherwise.
var Version = "dev"
