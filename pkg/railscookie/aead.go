package railscookie

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	aeadSalt     = "authenticated encrypted cookie"
	aeadKeySize  = 32
	gcmNonceSize = 12
	gcmTagSize   = 16
)

func (c *codec) gcm(nonceSize int) (cipher.AEAD, error) {
	key := c.keys.Key(aeadSalt, aeadKeySize)
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if nonceSize == gcmNonceSize {
		return cipher.NewGCM(block)
	}
	return cipher.NewGCMWithNonceSize(block, nonceSize)
}

func (c *codec) openAEAD(token string) (Session, error) {
	s, err := unescape(token)
	if err != nil {
		return nil, err
	}

	parts, err := split(s, 3)
	if err != nil {
		return nil, err
	}

	segments := make([][]byte, len(parts))
	for i, part := range parts {
		if segments[i], err = decodeBase64(part); err != nil {
			return nil, err
		}
	}
	ciphertext, iv, tag := segments[0], segments[1], segments[2]

	if len(iv) == 0 {
		return nil, fmt.Errorf("%w: empty initialization vector", ErrMalformedToken)
	}
	if len(tag) != gcmTagSize {
		return nil, fmt.Errorf("%w: authentication tag is %d bytes, want %d", ErrMalformedToken, len(tag), gcmTagSize)
	}

	aead, err := c.gcm(len(iv))
	if err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return c.openPayload(plaintext, true)
}

func (c *codec) sealAEAD(plaintext []byte, random io.Reader) (string, error) {
	aead, err := c.gcm(gcmNonceSize)
	if err != nil {
		return "", errors.Join(ErrEncodingFailed, err)
	}

	iv := make([]byte, gcmNonceSize)
	if _, err := io.ReadFull(random, iv); err != nil {
		return "", errors.Join(ErrEncodingFailed, err)
	}

	sealed := aead.Seal(nil, iv, plaintext, nil)
	ciphertext, tag := sealed[:len(sealed)-gcmTagSize], sealed[len(sealed)-gcmTagSize:]

	return escape(strings.Join([]string{
		encodeBase64(ciphertext),
		encodeBase64(iv),
		encodeBase64(tag),
	}, separator)), nil
}
