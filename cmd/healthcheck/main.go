// Command healthcheck probes the dashboard's health endpoint and exits 0 on
// success. Used as the container HEALTHCHECK, where no shell or curl exists.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

func main() {
	if err := probe(); err != nil {
		fmt.Fprintln(os.Stderr, "healthcheck:", err)
		os.Exit(1)
	}
}

// probe requires the full health contract: a 200 whose JSON body reports
// status "ok". A half-up server that answers but cannot marshal its state
// counts as unhealthy.
func probe() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	target := fmt.Sprintf("http://%s/api/v1/health", loopbackAddr(os.Getenv("SAPDASH_LISTEN_ADDR")))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned %s", resp.Status)
	}

	var health struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return fmt.Errorf("decode health body: %w", err)
	}
	if health.Status != "ok" {
		return fmt.Errorf("health status %q", health.Status)
	}

	return nil
}

// loopbackAddr rewrites the server's bind address for an in-container probe.
// The server may bind 0.0.0.0 but the probe runs next to it, so it always
// dials loopback.
func loopbackAddr(raw string) string {
	if raw == "" {
		return "127.0.0.1:8080"
	}

	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return "127.0.0.1:8080"
	}
	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}

	return net.JoinHostPort(host, port)
}
