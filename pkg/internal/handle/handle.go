// Package handle implements the HTTP request handlers.
package handle
