// Package main provides the entry point for the CyberKeyGen CLI.
//
// CyberKeyGen generates random passwords, PINs and leet-speak variants of a
// phrase, scores their strength and keeps a short local history.
//
// Usage:
//
//	cyberkeygen password --length 24
//	cyberkeygen pin --length 8
//	cyberkeygen leet "correct horse"
//	cyberkeygen history
//
// See --help for all available options.
package main

func main() {
	Execute()
}
