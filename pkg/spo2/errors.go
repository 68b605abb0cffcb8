package spo2

import "errors"

var (
	// ErrMalformedBase64 is returned when the payload is not valid standard Base64
	ErrMalformedBase64 = errors.New("malformed base64 payload")
	// ErrInvalidBlockLength is returned when the decoded payload is empty or not a multiple of the AES block size
	ErrInvalidBlockLength = errors.New("ciphertext length is not a positive multiple of the block size")
	// ErrInvalidPadding is returned when the final decrypted byte is not a valid PKCS7 padding length
	ErrInvalidPadding = errors.New("invalid padding length")
	// ErrInvalidUTF8 is returned when the unpadded plaintext is not valid UTF-8
	ErrInvalidUTF8 = errors.New("plaintext is not valid utf-8")
	// ErrInvalidKeyLength is returned when a key or IV is not 16 bytes long
	ErrInvalidKeyLength = errors.New("key and iv must be 16 bytes long")
)
