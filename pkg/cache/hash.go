package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of data (64 characters).
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns "prefix:<sha256>" over the JSON encoding of parts. Struct
// fields encode in declaration order, so equal settings give equal keys.
func hashKey(prefix string, parts ...any) string {
	h := sha256.New()
	if err := json.NewEncoder(h).Encode(parts); err != nil {
		// parts are strings and plain structs; this cannot fail in practice
		panic("cache: unencodable key part: " + err.Error())
	}
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}
