// Package template defines the backend-agnostic template contract: the
// per-render Context, the Driver interface every backend satisfies, the
// factory registry drivers are selected from, and the configuration surface
// shared by all of them.
package template
