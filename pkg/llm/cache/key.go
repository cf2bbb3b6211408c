package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Key derives the stable cache key for an assessment:
// sha256(model \x00 json(prompt) \x00 json(params)). encoding/json sorts map
// keys, so semantically equal params produce the same key.
func Key(model string, prompt, params any) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write(canonicalJSON(prompt))
	h.Write([]byte{0})
	h.Write(canonicalJSON(params))
	return hex.EncodeToString(h.Sum(nil))
}

func canonicalJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		// Only unmarshalable inputs (channels, funcs) land here; fall back to
		// the fmt rendering so the key is still deterministic.
		return []byte(fmt.Sprintf("%#v", v))
	}
	return data
}
