// Package errors defines domain-level errors used throughout the application.
// These errors represent failure categories shared by the registry, metadata,
// skills and client-configuration components; callers should test for them
// with errors.Is rather than matching message text.
package errors

import (
	"errors"
)

var (
	// ErrInvalidResponse indicates that an upstream API returned a non-2xx
	// status code or a body that could not be parsed at all.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrDecoding indicates that an upstream API returned structurally valid
	// JSON that failed to map onto the expected record shape.
	ErrDecoding = errors.New("decoding failed")

	// ErrNetwork indicates a transport-level failure before any response
	// could be read (DNS, connect, TLS, timeouts).
	ErrNetwork = errors.New("network failure")

	// ErrConfiguration indicates a missing client configuration path or a
	// configuration file that could not be read or written.
	ErrConfiguration = errors.New("configuration error")

	// ErrInstallationFailed indicates that adding a server entry to a client
	// configuration file could not be completed.
	ErrInstallationFailed = errors.New("installation failed")

	// ErrRegistryNotFound indicates that the requested registry is not part
	// of the known registry descriptor set.
	ErrRegistryNotFound = errors.New("registry not found")

	// ErrClientNotFound indicates that the requested client identifier is not
	// part of the known client descriptor set.
	ErrClientNotFound = errors.New("client not found")
)
