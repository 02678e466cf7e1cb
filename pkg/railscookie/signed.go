package railscookie

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

const (
	encryptionSalt   = "encrypted cookie"
	signatureSalt    = "signed encrypted cookie"
	cbcKeySize       = 32
	signatureKeySize = 64
)

// sign returns the lowercase hex HMAC of data, as ActiveSupport::MessageVerifier writes it.
func (c *codec) sign(data string) string {
	key := c.keys.Key(signatureSalt, signatureKeySize)
	defer clear(key)

	mac := hmac.New(c.digest, key)
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

func (c *codec) cbc() (cipher.Block, error) {
	key := c.keys.Key(encryptionSalt, cbcKeySize)
	defer clear(key)
	return aes.NewCipher(key)
}

func (c *codec) openSigned(token string) (Session, error) {
	s, err := unescape(token)
	if err != nil {
		return nil, err
	}

	parts, err := split(s, 2)
	if err != nil {
		return nil, err
	}
	data, digest := parts[0], parts[1]

	// Shape checks come first so that garbage is reported as malformed, not as forged.
	inner, err := decodeBase64(data)
	if err != nil {
		return nil, err
	}
	if _, err := hex.DecodeString(digest); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	if want := hex.EncodedLen(c.digest().Size()); len(digest) != want {
		return nil, fmt.Errorf("%w: signature is %d chars, want %d", ErrMalformedToken, len(digest), want)
	}

	if subtle.ConstantTimeCompare([]byte(c.sign(data)), []byte(digest)) != 1 {
		return nil, ErrAuthenticationFailed
	}

	fields, err := split(string(inner), 2)
	if err != nil {
		return nil, err
	}
	ciphertext, err := decodeBase64(fields[0])
	if err != nil {
		return nil, err
	}
	iv, err := decodeBase64(fields[1])
	if err != nil {
		return nil, err
	}

	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: initialization vector is %d bytes, want %d", ErrMalformedToken, len(iv), aes.BlockSize)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a whole number of blocks", ErrMalformedToken)
	}

	block, err := c.cbc()
	if err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	plaintext, err = unpad(plaintext)
	if err != nil {
		return nil, err
	}

	return c.openPayload(plaintext, false)
}

func (c *codec) sealSigned(plaintext []byte, random io.Reader) (string, error) {
	block, err := c.cbc()
	if err != nil {
		return "", errors.Join(ErrEncodingFailed, err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(random, iv); err != nil {
		return "", errors.Join(ErrEncodingFailed, err)
	}

	padded := pad(plaintext)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	data := encodeBase64([]byte(encodeBase64(ciphertext) + separator + encodeBase64(iv)))
	return escape(data + separator + c.sign(data)), nil
}

// pad applies PKCS#7 padding.
func pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)
	for range n {
		out = append(out, byte(n))
	}
	return out
}

func unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", ErrMalformedToken)
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, fmt.Errorf("%w: bad padding", ErrMalformedToken)
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, fmt.Errorf("%w: bad padding", ErrMalformedToken)
		}
	}
	return b[:len(b)-n], nil
}
