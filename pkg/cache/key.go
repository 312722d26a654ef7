package cache

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
)

// Key builds "<prefix>:<md5 of the JSON encoding of parts>".
func Key(prefix string, parts interface{}) (string, error) {
	data, err := json.Marshal(parts)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%x", prefix, md5.Sum(data)), nil
}
