// Package http implements the HTTP transport of the reward service.
//
// It exposes route wiring, the reward calculation handler and the middleware
// chain in front of it: request tracing, access logging, panic recovery,
// Prometheus request metrics and response compression. Errors are rendered
// as ["<message>", "<correlation id>"] so that a client can quote the id
// when reporting a problem.
package http
