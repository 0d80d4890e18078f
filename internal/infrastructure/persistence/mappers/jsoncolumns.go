package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

func toJSONColumn(field string, v any) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", field, err)
	}
	return datatypes.JSON(b), nil
}

// fromJSONColumn leaves dst untouched for NULL or empty columns.
func fromJSONColumn(field string, col datatypes.JSON, dst any) error {
	if len(col) == 0 || string(col) == "null" {
		return nil
	}
	if err := json.Unmarshal(col, dst); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", field, err)
	}
	return nil
}
