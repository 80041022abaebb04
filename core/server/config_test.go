package server_test

import (
	"testing"
	"time"

	"image-proxy/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"Default", "", ":8080"},
		{"Custom", "3000", ":3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.Address())
		})
	}
}

func TestConfig_Timeouts(t *testing.T) {
	c := server.Config{ReadTimeoutSeconds: 15, WriteTimeoutSeconds: -1}
	assert.Equal(t, 15*time.Second, c.ReadTimeout())
	assert.Equal(t, time.Duration(0), c.WriteTimeout())
}
