package spo2

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"

	"github.com/mergermarket/go-pkcs7"
)

// Encrypt produces the payload the sensor firmware publishes for plaintext:
// PKCS7 padded, AES-128-CBC encrypted with the decryptor's key and IV, Base64
// encoded.
func (d *Decryptor) Encrypt(plaintext string) string {
	// Pad only fails for block sizes outside 1..255.
	padded, _ := pkcs7.Pad([]byte(plaintext), aes.BlockSize)

	// The key length is checked when the Decryptor is built.
	block, _ := aes.NewCipher(d.key[:])

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, d.iv[:]).CryptBlocks(ciphertext, padded)
	return base64.StdEncoding.EncodeToString(ciphertext)
}
