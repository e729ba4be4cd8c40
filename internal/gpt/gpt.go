// Package gpt wraps the chat-completion client behind a process-wide
// factory. The competitor generator is its only consumer; it clones a fresh
// client per prompt so instructions never leak between calls.
package gpt

import (
	"sync"

	gpt "github.com/m-ariany/gpt-chat-client"
)

var (
	client *gpt.Client
	once   sync.Once
)

// ClientFactory hands out clones of the shared chat client. Clones carry the
// factory config unless overridden per call.
type ClientFactory interface {
	Client() (Client, error)
	ClientWithConfig(ClientConfig) (Client, error)
}

type factory struct {
}

// NewClientFactory initializes the shared client on the first call; later
// calls reuse it and ignore the given config.
func NewClientFactory(cnf ClientConfig) (ClientFactory, error) {
	var err error
	once.Do(func() {
		client, err = gpt.NewClient(cnf)
	})
	return &factory{}, err
}

func (g factory) Client() (Client, error) {
	return Client{Client: client.Clone()}, nil
}

func (g factory) ClientWithConfig(cnf ClientConfig) (Client, error) {
	return Client{Client: client.CloneWithConfig(cnf)}, nil
}

type Client struct {
	*gpt.Client
}

type ClientConfig = gpt.ClientConfig
