package totp

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// AESKeySize is the key length AES-256 requires.
const AESKeySize = 32

// EncryptSecret seals a credential secret with AES-256-GCM for storage at
// rest. The random nonce is prepended to the ciphertext and the whole blob
// is returned base64-encoded.
func EncryptSecret(plainText string, key []byte) (string, error) {
	aead, err := newGCM(key, ErrFailedToEncryptSecret)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}

	cipherText := aead.Seal(nonce, nonce, []byte(plainText), nil)
	return base64.StdEncoding.EncodeToString(cipherText), nil
}

// DecryptSecret reverses EncryptSecret, recovering the plaintext secret from
// a base64-encoded nonce-plus-ciphertext blob.
func DecryptSecret(cipherTextBase64 string, key []byte) (string, error) {
	aead, err := newGCM(key, ErrFailedToDecryptSecret)
	if err != nil {
		return "", err
	}

	cipherText, err := base64.StdEncoding.DecodeString(cipherTextBase64)
	if err != nil {
		return "", errors.Join(ErrFailedToDecryptSecret, err)
	}

	nonceSize := aead.NonceSize()
	if len(cipherText) < nonceSize {
		return "", errors.Join(ErrFailedToDecryptSecret, ErrInvalidCipherTooShort)
	}
	nonce, cipherText := cipherText[:nonceSize], cipherText[nonceSize:]

	plainText, err := aead.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return "", errors.Join(ErrFailedToDecryptSecret, err)
	}
	return string(plainText), nil
}

// newGCM builds the AEAD for a 32-byte key, wrapping any failure with the
// caller's sentinel.
func newGCM(key []byte, failure error) (cipher.AEAD, error) {
	if len(key) != AESKeySize {
		return nil, errors.Join(failure, ErrInvalidEncryptionKeyLength)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(failure, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(failure, err)
	}
	return aead, nil
}

// GenerateEncryptionKey returns a fresh random key suitable for AES-256.
func GenerateEncryptionKey() ([]byte, error) {
	key := make([]byte, AESKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrFailedToGenerateEncryptionKey, err)
	}
	return key, nil
}

// GenerateEncodedEncryptionKey returns a fresh AES-256 key base64-encoded,
// ready to be stored in the TOTP_ENCRYPTION_KEY environment variable.
func GenerateEncodedEncryptionKey() (string, error) {
	key, err := GenerateEncryptionKey()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// LoadEncryptionKey reads the configured encryption key from the environment
// and decodes it into a usable AES-256 key.
func LoadEncryptionKey() ([]byte, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadEncryptionKey, err)
	}
	return decodeEncryptionKey(cfg.EncryptionKey)
}

func decodeEncryptionKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, errors.Join(ErrFailedToLoadEncryptionKey, ErrEncryptionKeyNotSet)
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadEncryptionKey, err)
	}
	if len(key) != AESKeySize {
		return nil, errors.Join(ErrFailedToLoadEncryptionKey, ErrInvalidEncryptionKeyLength)
	}
	return key, nil
}
