package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds user preferences loaded from config.yaml.
type Config struct {
	Global GlobalConfig          `yaml:"global" json:"global"`
	Rules  map[string]RuleConfig `yaml:"rules"  json:"rules,omitempty" validate:"dive,keys,required,endkeys"`
}

// GlobalConfig holds settings that apply to every invocation.
type GlobalConfig struct {
	Interactive bool `yaml:"interactive" json:"interactive"`
	Debug       bool `yaml:"debug"       json:"debug"`
	Limit       int  `yaml:"limit"       json:"limit"   validate:"gte=0"`
	Workers     int  `yaml:"workers"     json:"workers" validate:"gte=0"`
}

// RuleConfig overrides a single rule by name.
// Pointer types distinguish "not specified" from zero values.
type RuleConfig struct {
	Enabled  *bool `yaml:"enabled,omitempty"  json:"enabled,omitempty"`
	Priority *int  `yaml:"priority,omitempty" json:"priority,omitempty" validate:"omitempty,gt=0"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Global: GlobalConfig{Interactive: true},
	}
}

// IsRuleEnabled reports whether the named rule may run. Rules not mentioned
// in the config are enabled.
func (c Config) IsRuleEnabled(name string) bool {
	rc, ok := c.Rules[name]
	if !ok || rc.Enabled == nil {
		return true
	}
	return *rc.Enabled
}

// RuleEnabled reports whether r runs under c. An explicit enabled setting
// wins; otherwise the rule's own default applies.
func (c Config) RuleEnabled(r Rule) bool {
	if rc, ok := c.Rules[r.Name()]; ok && rc.Enabled != nil {
		return *rc.Enabled
	}
	return r.EnabledByDefault()
}

// RulePriority returns the configured priority override for a rule.
func (c Config) RulePriority(name string) (int, bool) {
	rc, ok := c.Rules[name]
	if !ok || rc.Priority == nil {
		return 0, false
	}
	return *rc.Priority, true
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "gte":
		return fmt.Errorf("%s must be >= %s", field, fe.Param())
	case "gt":
		return fmt.Errorf("%s must be > %s", field, fe.Param())
	case "required":
		return fmt.Errorf("%s: rule name must not be empty", field)
	default:
		return fmt.Errorf("%s failed %q validation", field, fe.Tag())
	}
}

// ExampleConfig returns a documented config file.
func ExampleConfig() string {
	return `# ftf configuration

global:
  # Ask which correction to use when several are available
  interactive: true
  # Log rule evaluation to stderr
  debug: false
  # Show at most this many corrections (0 = all)
  limit: 0
  # Parallel rule evaluation workers (0 = one per CPU)
  workers: 0

# Override rules by name
rules:
  git_branch_delete:
    # Disable this rule
    enabled: false
  git_push_set_upstream:
    # Lower priority ranks first
    priority: 300
  mkdir_p:
    enabled: true
    priority: 150
`
}
