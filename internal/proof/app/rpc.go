package app

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/btcsuite/btcd/rpcclient"
)

func rpcConnConfig(rawURL, user, password string) (*rpcclient.ConnConfig, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	host := parsed.Host
	if wallet := parsed.EscapedPath(); wallet != "" && wallet != "/" {
		host += wallet
	}
	return &rpcclient.ConnConfig{
		Host:         host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	cfg, err := rpcConnConfig(rawURL, user, password)
	if err != nil {
		return nil, err
	}
	return rpcclient.New(cfg, nil)
}
