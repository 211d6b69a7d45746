package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid marks configuration validation failures.
var ErrInvalid = errors.New("invalid config")

var validate = validator.New()

// Validate checks field constraints and that novel titles are unique.
func Validate(cfg *AppConfig) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	seen := make(map[string]struct{}, len(cfg.Novels))
	for _, n := range cfg.Novels {
		if _, ok := seen[n.Title]; ok {
			return fmt.Errorf("%w: duplicate novel title %q", ErrInvalid, n.Title)
		}
		seen[n.Title] = struct{}{}
	}
	return nil
}
