package common

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+)\s*}}`)

// Template replaces {{ env.NAME || fallback }} placeholders. Alternatives are
// tried left to right; env.NAME is taken when set and non-empty, any other
// alternative is taken literally, converted from json to yaml when it parses.
func Template(bytes []byte) []byte {
	return templateRegex.ReplaceAllFunc(bytes, func(match []byte) []byte {
		// * extract content inside braces
		content := strings.TrimSpace(string(match[2 : len(match)-2]))

		// * check each alternative
		for _, part := range strings.Split(content, "||") {
			part = strings.TrimSpace(part)
			if strings.HasPrefix(part, "env.") {
				if value := os.Getenv(strings.TrimPrefix(part, "env.")); value != "" {
					return []byte(value)
				}
			} else if part != "" {
				value, err := Nested(part)
				if err != nil {
					return []byte(part)
				}
				return []byte(value)
			}
		}

		// * no valid value found
		return []byte("")
	})
}

// Nested converts a json literal to yaml.
func Nested(value string) (string, error) {
	var result any
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return "", err
	}

	bytes, err := yaml.Marshal(result)
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(string(bytes), "\n"), nil
}
