package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration принимает как формат time.ParseDuration ("15m", "1h30m"),
// так и суффикс дней ("1d", "7d"). Число без единицы трактуется как секунды.
type Duration time.Duration

func ParseDuration(value string) (Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("пустое значение длительности")
	}

	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		return Duration(time.Duration(seconds) * time.Second), nil
	}

	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.ParseFloat(days, 64)
		if err != nil {
			return 0, fmt.Errorf("неверный формат длительности %q: %w", value, err)
		}
		return Duration(time.Duration(n * float64(24*time.Hour))), nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("неверный формат длительности %q: %w", value, err)
	}
	return Duration(d), nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("ошибка чтения длительности: %w", err)
	}

	parsed, err := ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
