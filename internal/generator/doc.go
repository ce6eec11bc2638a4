// Package generator produces passwords, pronounceable passwords, PINs and
// leet-speak text.
//
// All functions are pure apart from the random Source they draw from. The
// default source is math/rand/v2's global generator; tests pass a seeded
// source to get reproducible output.
//
// The default source is not cryptographically secure. Callers that need
// unpredictable values supply their own Source.
package generator
