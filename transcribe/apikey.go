package transcribe

import (
	"fmt"
	"os"
	"strings"

	"github.com/srijan/shruti/core"
)

// DefaultKeyPath is the credential file looked up when no --key flag is
// given. The file holds the API key on a single line and must stay out of
// version control.
const DefaultKeyPath = "aai_api_key.txt"

// LoadKey reads the API credential from the file at path. A missing or empty
// file is a configuration error.
func LoadKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: API key file not found: %s (create it with your API key on a single line)", core.ErrConfiguration, path)
	}
	if err != nil {
		return "", fmt.Errorf("%w: read API key file: %w", core.ErrConfiguration, err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("%w: API key file %s is empty", core.ErrConfiguration, path)
	}
	return key, nil
}
