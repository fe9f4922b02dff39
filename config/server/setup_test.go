package server

import (
	"net/http"
	"testing"

	"authntik/config"

	"github.com/stretchr/testify/assert"
)

func TestSetupServer(t *testing.T) {
	handler := http.NewServeMux()
	server := SetupServer(config.ServerConfig{Host: "127.0.0.1", Port: "8000"}, handler)

	assert.Equal(t, "127.0.0.1:8000", server.Addr)
	assert.Same(t, handler, server.Handler)
	assert.NotZero(t, server.ReadHeaderTimeout)
}
