package porter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPack = errors.New("invalid resource pack")
	ErrOutput      = errors.New("output error")
	ErrBusy        = errors.New("output directory busy")
	ErrAsset       = errors.New("asset error")
)

// Wrap builds an error message that includes the failing operation while
// tagging it with marker for errors.Is checks. The marker should be one of
// the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrAsset
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "port failure"
	}
	return strings.Join(parts, ": ")
}
