// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request correlation, request logging, CORS, rate limiting, tracing,
// panic recovery, and the final error-to-response translation.
package middleware
