package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
)

const defaultSessionKeyBytes = 32

type GenSessionKeyCommand struct{}

func (c *GenSessionKeyCommand) Name() string {
	return "gen-session-key"
}

func (c *GenSessionKeyCommand) Description() string {
	return "Generate a random SESSION_KEY value (gen-session-key [bytes])"
}

func (c *GenSessionKeyCommand) Run(args []string) error {
	size := defaultSessionKeyBytes
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < defaultSessionKeyBytes {
			return fmt.Errorf("key size must be a number of at least %d bytes", defaultSessionKeyBytes)
		}
		size = n
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("failed to read random bytes: %w", err)
	}

	fmt.Printf("SESSION_KEY=%s\n", hex.EncodeToString(buf))
	return nil
}
