package cmd

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"
)

var errEncryptedKey = errors.New("private key is encrypted; provide --passphrase or TEST_ALL_PASSPHRASE")

// loadSigner loads the --key private key used to reach the build host,
// decrypting it with passphrase when one is given.
func loadSigner(path, passphrase string) (ssh.Signer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key %s: %w", path, err)
	}
	if passphrase != "" {
		return ssh.ParsePrivateKeyWithPassphrase(b, []byte(passphrase))
	}
	s, err := ssh.ParsePrivateKey(b)
	if err == nil {
		return s, nil
	}
	var missing *ssh.PassphraseMissingError
	if errors.As(err, &missing) {
		return nil, errEncryptedKey
	}
	return nil, err
}
