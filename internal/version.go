package internal

// Version is the current release of the pol-go tools.
const Version = "0.1.0"
