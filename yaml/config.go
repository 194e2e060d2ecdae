// Package yaml loads pipeline thresholds from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/fwojciec/prodmd"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML file at path over prodmd.DefaultConfig and
// validates the result. Keys absent from the file keep their default.
func LoadConfig(path string) (prodmd.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return prodmd.Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return prodmd.Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML data over prodmd.DefaultConfig and validates
// the result. Unknown keys are rejected.
func ParseConfig(data []byte) (prodmd.Config, error) {
	cfg := prodmd.DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return prodmd.Config{}, prodmd.Errorf(prodmd.EINVALID, "invalid config: %v", err)
	}

	if err := Validate(cfg); err != nil {
		return prodmd.Config{}, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every threshold of cfg.
func Validate(cfg prodmd.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return prodmd.Errorf(prodmd.EINVALID, "invalid config: %v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, e.Field()+" "+formatValidationError(e))
	}
	return prodmd.Errorf(prodmd.EINVALID, "invalid config: %s", strings.Join(msgs, "; "))
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "hostname":
		return "must be a host name"
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "gtefield":
		return fmt.Sprintf("must not be smaller than %s", e.Param())
	default:
		return fmt.Sprintf("failed validation '%s'", e.Tag())
	}
}
