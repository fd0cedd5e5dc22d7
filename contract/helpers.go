package contract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// Helpers: state keys, json
////////////////////////////////////////////////////////////////////////////////

const configKey = "config"

func tokenKey(id uint64) string {
	return fmt.Sprintf("token:%d", id)
}

func operatorKey(owner, operator string) string {
	return fmt.Sprintf("operator:%s:%s", owner, operator)
}

const supplyKey = "supply"

// index key prefixes
const (
	idxTokensOfOwnerPrefix = "idx:tokens:owner:" // + owner
)

func formatTokenID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func parseTokenID(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// Conversions from/to json strings

func ToJSON[T any](v T) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func FromJSON[T any](data string) (*T, error) {
	data = strings.TrimSpace(data)
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, err
	}
	return &v, nil
}
