package database

import (
	"testing"
	"time"
)

func TestNewUsesConfiguredWriteTimeout(t *testing.T) {
	client := New(nil, time.Second*30)

	if client.writeTimeout != time.Second*30 {
		t.Errorf("expected 30s write timeout, got %v", client.writeTimeout)
	}
}

func TestNewDefaultsWriteTimeout(t *testing.T) {
	client := New(nil, 0)

	if client.writeTimeout != time.Second*120 {
		t.Errorf("expected the default write timeout, got %v", client.writeTimeout)
	}
}
