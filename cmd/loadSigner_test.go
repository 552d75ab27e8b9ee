package cmd

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeRSAKey(t *testing.T, passphrase string) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	der := x509.MarshalPKCS1PrivateKey(key)
	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: der}
	if passphrase != "" {
		block, err = x509.EncryptPEMBlock(rand.Reader, "RSA PRIVATE KEY", der, []byte(passphrase), x509.PEMCipherAES256)
		require.NoError(t, err)
	}
	return writeTemp(t, t.TempDir(), "id_rsa", string(pem.EncodeToMemory(block)))
}

func TestLoadSigner_FileNotFound(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing_key")
	_, err := loadSigner(p, "")
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
	require.Contains(t, err.Error(), "read key "+p)
}

func TestLoadSigner_RSAKey_Success(t *testing.T) {
	s, err := loadSigner(writeRSAKey(t, ""), "")
	require.NoError(t, err)
	require.NotNil(t, s.PublicKey())
}

func TestLoadSigner_UnencryptedKey_WithPassphrase_Fails(t *testing.T) {
	_, err := loadSigner(writeRSAKey(t, ""), "pass")
	require.Error(t, err)
}

func TestLoadSigner_EncryptedKey_MissingPassphrase(t *testing.T) {
	_, err := loadSigner(writeRSAKey(t, "pp"), "")
	require.ErrorIs(t, err, errEncryptedKey)
	require.Contains(t, err.Error(), "TEST_ALL_PASSPHRASE")
}

func TestLoadSigner_EncryptedKey_WithPassphrase_Success(t *testing.T) {
	s, err := loadSigner(writeRSAKey(t, "pp"), "pp")
	require.NoError(t, err)
	require.NotNil(t, s)
}
