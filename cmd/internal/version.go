package internal

const Version = "v0.1.0"
