// Command genenv writes a .env file pre-filled with freshly generated
// secrets, ready for local development or a first deployment.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"math/big"
	"os"
)

const envTemplate = `# Backend settings.

# mongodb connection
MONGO_URI=mongodb://admin:%s@mongodb:27017
MONGO_DB=admin_console

# redis connection
REDIS_ADDR=redis:6379
REDIS_DB=0

# docs / introspection basic auth
DOCS_USERNAME=admin
DOCS_PASSWORD=%s

# static bearer secret protecting the registration surface
STATIC_BEARER_SECRET=%s
JWT_SECRET=%s

# chat proxy
OPENAI_API_KEY=

# default owner account
OWNER_USERNAME=root
OWNER_PASSWORD=%s
OWNER_EMAIL=owner@example.com
`

const secretAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateSecret returns a random alphanumeric string of the given length.
func generateSecret(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(secretAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = secretAlphabet[n.Int64()]
	}
	return string(out), nil
}

func main() {
	output := flag.String("o", ".env", "path of the env file to write")
	flag.Parse()

	mongoPassword, err := generateSecret(16)
	if err != nil {
		fatal(err)
	}
	docsPassword, err := generateSecret(16)
	if err != nil {
		fatal(err)
	}
	bearerSecret, err := generateSecret(32)
	if err != nil {
		fatal(err)
	}
	jwtSecret, err := generateSecret(32)
	if err != nil {
		fatal(err)
	}
	ownerPassword, err := generateSecret(16)
	if err != nil {
		fatal(err)
	}

	content := fmt.Sprintf(envTemplate, mongoPassword, docsPassword, bearerSecret, jwtSecret, ownerPassword)
	if err := os.WriteFile(*output, []byte(content), 0o600); err != nil {
		fatal(err)
	}
	fmt.Printf("generated %s with fresh secrets\n", *output)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "genenv:", err)
	os.Exit(1)
}
