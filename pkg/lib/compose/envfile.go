package compose

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Keys of the docker .env file, in prompting order.
const (
	KeyDBName        = "DB_NAME"
	KeyDBUser        = "DB_USER"
	KeyDBPassword    = "DB_PASSWORD"
	KeyDBHost        = "DB_HOST"
	KeyDBRootPass    = "DB_ROOT_PASSWORD"
	KeyEmail         = "EMAIL"
	KeyEmailPassword = "EMAIL_PASSWORD"
	KeySMTPServer    = "SMTP_SERVER"
	KeySMTPPort      = "SMTP_PORT"
	KeyEncryptionKey = "ENCRYPTION_KEY"
)

// EnvField describes one value the launcher asks for when no database env
// file can be reused.
type EnvField struct {
	Key     string
	Prompt  string
	Secret  bool
	Default string
}

// EnvFields lists every docker .env value in prompting order.
var EnvFields = []EnvField{
	{Key: KeyDBName, Prompt: "Database name"},
	{Key: KeyDBUser, Prompt: "Database user"},
	{Key: KeyDBPassword, Prompt: "Database password", Secret: true},
	{Key: KeyDBHost, Prompt: "Database host", Default: "localhost"},
	{Key: KeyDBRootPass, Prompt: "Database root password", Secret: true},
	{Key: KeyEmail, Prompt: "Notification email address"},
	{Key: KeyEmailPassword, Prompt: "Email password", Secret: true},
	{Key: KeySMTPServer, Prompt: "SMTP server"},
	{Key: KeySMTPPort, Prompt: "SMTP port", Default: "587"},
	{Key: KeyEncryptionKey, Prompt: "Encryption key (at least 16 characters)", Secret: true},
}

// EnvExists reports whether the docker .env file is present.
func (c Compose) EnvExists() bool {
	_, err := os.Stat(c.EnvPath())
	return err == nil
}

// DeriveEnv builds the docker env from the database env file, adding the
// root password the database scripts never store.
func DeriveEnv(dbEnvPath, rootPassword string) (map[string]string, error) {
	env, err := godotenv.Read(dbEnvPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dbEnvPath, err)
	}
	env[KeyDBRootPass] = rootPassword
	return env, nil
}

// HasEnv reports whether path exists as a reusable env file.
func HasEnv(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteEnv writes env to the docker .env file. The file holds credentials, so
// it is created owner-only and an existing file is narrowed before writing.
func (c Compose) WriteEnv(env map[string]string) error {
	content, err := godotenv.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.EnvPath(), err)
	}

	f, err := os.OpenFile(c.EnvPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("write %s: %w", c.EnvPath(), err)
	}
	defer f.Close()

	if err := f.Chmod(0o600); err != nil {
		return fmt.Errorf("write %s: %w", c.EnvPath(), err)
	}
	if _, err := f.WriteString(content + "\n"); err != nil {
		return fmt.Errorf("write %s: %w", c.EnvPath(), err)
	}
	return f.Sync()
}
