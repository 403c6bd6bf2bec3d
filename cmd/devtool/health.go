package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	healthTimeout      = 5 * time.Second
	slowResponseCutoff = time.Second
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check application health (health-check [staging|production|<base url>])"
}

func (c *HealthCheckCommand) Run(args []string) error {
	target := envProduction
	if len(args) > 0 {
		target = args[0]
	}
	baseURL := healthBaseURL(target)

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	client := http.Client{Timeout: healthTimeout}
	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		if err := checkEndpoint(client, baseURL+path); err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		duration := time.Since(start)

		if duration > slowResponseCutoff {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, duration)
		}
	}

	return nil
}

// healthBaseURL maps an environment name onto its local port, or accepts a URL
func healthBaseURL(target string) string {
	switch target {
	case envStaging:
		return "http://localhost:8081"
	case envProduction:
		return "http://localhost:8080"
	default:
		return strings.TrimRight(target, "/")
	}
}

func checkEndpoint(client http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status code %d", resp.StatusCode)
	}
	return nil
}
