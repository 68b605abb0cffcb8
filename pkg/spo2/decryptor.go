// Package spo2 decrypts the SpO₂ readings published by the sensor firmware.
//
// The firmware encrypts each reading with AES-128-CBC using a fixed key and an
// all-zero IV, pads it with PKCS7 and publishes it Base64 encoded. A Decryptor
// reverses that chain:
//
//	base64 decode -> AES-128-CBC decrypt -> PKCS7 unpad -> UTF-8 text
//
// Any failing stage aborts the call with one of the Err* values of this
// package, which can be matched with errors.Is.
package spo2

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

// The key and IV flashed into the sensor firmware.
var (
	firmwareKey = [aes.BlockSize]byte{
		0x00, 0x01, 0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0A, 0x0B,
		0x0C, 0x0D, 0x0E, 0x0F,
	}
	firmwareIV = [aes.BlockSize]byte{}
)

// DefaultKey returns a copy of the firmware AES key.
func DefaultKey() []byte {
	key := firmwareKey
	return key[:]
}

// DefaultIV returns a copy of the firmware IV.
func DefaultIV() []byte {
	iv := firmwareIV
	return iv[:]
}

// Decryptor decrypts sensor payloads with one key and IV pair. It holds no
// mutable state and can be shared between goroutines.
type Decryptor struct {
	key [aes.BlockSize]byte
	iv  [aes.BlockSize]byte
}

// New creates a Decryptor for the given AES-128 key and IV. Both are copied,
// later changes to the passed slices have no effect.
func New(key, iv []byte) (*Decryptor, error) {
	if len(key) != aes.BlockSize {
		return nil, fmt.Errorf("%w: key is %d bytes", ErrInvalidKeyLength, len(key))
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: iv is %d bytes", ErrInvalidKeyLength, len(iv))
	}

	d := &Decryptor{}
	copy(d.key[:], key)
	copy(d.iv[:], iv)
	return d, nil
}

// NewDefault creates a Decryptor using the firmware key and IV.
func NewDefault() *Decryptor {
	return &Decryptor{key: firmwareKey, iv: firmwareIV}
}

// DecodeAndDecrypt decrypts a payload with the firmware key and IV.
func DecodeAndDecrypt(input string) (string, error) {
	return NewDefault().DecodeAndDecrypt(input)
}

// DecodeAndDecrypt turns a Base64 payload into the plaintext reading.
//
// CBC is not authenticated, so a wrong key and a corrupted payload look the
// same: either the padding byte or the UTF-8 check fails, or garbage text
// comes back.
func (d *Decryptor) DecodeAndDecrypt(input string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedBase64, err)
	}

	plaintext, err := d.Decrypt(ciphertext)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(plaintext) {
		return "", ErrInvalidUTF8
	}
	return string(plaintext), nil
}

// Decrypt decrypts raw ciphertext and strips its padding. The input slice is
// left untouched.
func (d *Decryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	padded, err := d.DecryptPadded(ciphertext)
	if err != nil {
		return nil, err
	}
	return unpad(padded)
}

// DecryptPadded decrypts raw ciphertext without removing the padding, for
// inspecting what the firmware actually sent.
func (d *Decryptor) DecryptPadded(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidBlockLength, len(ciphertext))
	}

	block, err := aes.NewCipher(d.key[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, d.iv[:]).CryptBlocks(plaintext, ciphertext)
	return plaintext, nil
}
