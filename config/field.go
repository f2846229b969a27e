package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/layervue/create-layervue/color"
	"github.com/layervue/create-layervue/constant"
	"github.com/layervue/create-layervue/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Type returns the name of the field's value type.
func (f *Field) Type() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Parse converts command-line values into the type of the field's default.
func (f *Field) Parse(values []string) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no value given for %s", f.Key)
	}

	switch f.Value.(type) {
	case string:
		return values[0], nil
	case int:
		v, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value %q for %s", values[0], f.Key)
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(values[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value %q for %s", values[0], f.Key)
		}
		return v, nil
	case []string:
		return values, nil
	default:
		return nil, fmt.Errorf("field %s has an unsupported type", f.Key)
	}
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Env         string `json:"env"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Env:         f.Env(),
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.Type(),
	})
}

// Pretty returns a colored, multi-line description of the field.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)("true")
		}
		return style.Fg(color.Red)("false")
	case string:
		if value == "" {
			return style.Faint(`""`)
		}
		return style.Fg(color.Yellow)(value)
	case []string:
		return "[" + strings.Join(lo.Map(value, func(s string, _ int) string {
			return style.Fg(color.Yellow)(s)
		}), ", ") + "]"
	default:
		return fmt.Sprint(value)
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"value":  viper.Get,
	"hl":     highlight,
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ .Type }}`))
