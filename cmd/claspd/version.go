package main

// version is overwritten at build time:
//
//	go build -ldflags "-X main.version=$(git describe)"
var version = "development"
