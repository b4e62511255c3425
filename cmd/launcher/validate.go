package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kahiin/launcher/pkg/lib/compose"
)

const minEncryptionKeyLen = 16

// validationError rejects user input before any script runs.
type validationError struct {
	Field  string
	Reason string
}

func (e *validationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

var requiredKeys = []string{
	compose.KeyDBName,
	compose.KeyDBUser,
	compose.KeyDBPassword,
	compose.KeyDBHost,
	compose.KeyDBRootPass,
	compose.KeyEmail,
	compose.KeyEmailPassword,
	compose.KeySMTPServer,
}

// validateEnv checks the database and mail settings shared by the init form
// and the docker .env form.
func validateEnv(env map[string]string) error {
	for _, key := range requiredKeys {
		if strings.TrimSpace(env[key]) == "" {
			return &validationError{Field: key, Reason: "must not be empty"}
		}
	}
	if !strings.Contains(env[compose.KeyEmail], "@") {
		return &validationError{Field: compose.KeyEmail, Reason: "must be an email address"}
	}
	port, err := strconv.Atoi(env[compose.KeySMTPPort])
	if err != nil || port < 1 || port > 65535 {
		return &validationError{Field: compose.KeySMTPPort, Reason: "must be a port number between 1 and 65535"}
	}
	if len([]rune(env[compose.KeyEncryptionKey])) < minEncryptionKeyLen {
		return &validationError{Field: compose.KeyEncryptionKey, Reason: fmt.Sprintf("must have at least %d characters", minEncryptionKeyLen)}
	}
	return nil
}
