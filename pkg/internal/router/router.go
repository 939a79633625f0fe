// Package router binds the HTTP routes to their handlers.
package router
