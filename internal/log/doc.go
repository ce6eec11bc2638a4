// Package log provides secure logging built on top of the standard slog package.
//
// The SecureHandler masks attributes that could carry a generated value:
//   - Keys such as password, pin, text, value and leet
//   - Keys containing password, secret or token
//   - Values that look like long generated secrets
//
// Even in verbose mode, generated values are masked so that a shared log
// never leaks a password. Use Fingerprint to refer to a value in a log line.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("generated password",
//	    "password", value,                 // logged as ***REDACTED***
//	    "fingerprint", log.Fingerprint(value),
//	)
package log
