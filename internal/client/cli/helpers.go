package cli

import (
	"fmt"
	"strconv"
)

// readFloat запрашивает число; пустой ввод возвращает 0
func (c *Cli) readFloat(prompt string) (float64, error) {
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}
	if input == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", input)
	}
	return value, nil
}

// readInt запрашивает целое число; пустой ввод возвращает 0
func (c *Cli) readInt(prompt string) (int, error) {
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}
	if input == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", input)
	}
	return value, nil
}
