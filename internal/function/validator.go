package function

import (
	"sort"

	apperrors "github.com/pitchside/pitchside/internal/errors"
)

// ValidateArgs checks argument presence and type against a parameter schema.
// Required parameters are checked first, in name order, so the reported
// parameter is deterministic. Unknown extra arguments are tolerated; the
// model sometimes volunteers fields and dropping the call over them helps no one.
func ValidateArgs(params map[string]ParamSpec, args map[string]any) error {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !params[name].Required {
			continue
		}
		if _, ok := args[name]; !ok {
			return apperrors.InvalidArgument(name, "is required but missing")
		}
	}

	for _, name := range names {
		value, ok := args[name]
		if !ok {
			continue
		}
		if err := validateType(name, params[name].Type, value); err != nil {
			return err
		}
	}

	return nil
}

func validateType(name string, expected ParamType, value any) error {
	switch expected {
	case TypeString:
		if _, ok := value.(string); !ok {
			return apperrors.InvalidArgument(name, "must be a string")
		}
	case TypeNumber, TypeInteger:
		// JSON numbers decode to float64
		if _, ok := value.(float64); !ok {
			return apperrors.InvalidArgument(name, "must be a number")
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return apperrors.InvalidArgument(name, "must be a boolean")
		}
	case TypeArray:
		if _, ok := value.([]any); !ok {
			return apperrors.InvalidArgument(name, "must be an array")
		}
	}
	return nil
}
