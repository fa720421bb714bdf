package migration

import (
	"fmt"
	"time"
)

const seedDateLayout = "2006-01-02"

func parseSeedDate(value string) (time.Time, error) {
	t, err := time.Parse(seedDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD: %w", err)
	}
	return t, nil
}

// NewStrategy picks the migration engine by name. golang-migrate is the
// default.
func NewStrategy(name, scriptsPath string) (Strategy, error) {
	switch name {
	case "", "golang_migrate":
		return NewGolangMigrateStrategy(scriptsPath), nil
	case "goose":
		return NewGooseStrategy(scriptsPath), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy: %s", name)
	}
}
