// Package api provides the HTTP server that receives Discord interaction webhooks.
package api

// Config is the webhook server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8787")
	ListenAddr string
}
