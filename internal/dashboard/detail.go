package dashboard

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DetailYAML renders a row for the detail view.
func DetailYAML(row any) (string, error) {
	if row == nil {
		return "", fmt.Errorf("no row selected")
	}
	data, err := yaml.Marshal(row)
	if err != nil {
		return "", fmt.Errorf("marshal row: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
