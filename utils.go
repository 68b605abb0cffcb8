package main

import (
	"encoding/hex"
)

func bToHex(b []byte) string {
	resp := ""
	for i, bt := range b {
		btAsString := hex.EncodeToString([]byte{bt})
		if i > 0 {
			resp += " "
		}
		resp += btAsString
	}
	return resp
}
