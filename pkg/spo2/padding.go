package spo2

import (
	"crypto/aes"
	"fmt"
)

// unpad strips PKCS7 padding using only the final length byte. The bytes in
// front of it are not compared against the length, the sensor firmware
// pairing has always been decoded this way.
func unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty block", ErrInvalidPadding)
	}

	padLen := int(data[len(data)-1])
	if padLen < 1 || padLen > aes.BlockSize || padLen > len(data) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPadding, padLen)
	}

	return data[:len(data)-padLen], nil
}
