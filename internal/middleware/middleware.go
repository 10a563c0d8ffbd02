// Package middleware contains the Echo middleware used by the HTTP
// server: request correlation, request-scoped logging, CORS/security
// headers, rate limiting, New Relic tracing, and the global error
// handler that funnels every failure into a consistent response.
package middleware
