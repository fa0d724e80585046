package tool

import "strings"

// Argument maps come from JSON-decoded engine output, so numbers usually
// arrive as float64. Each helper tolerates the plausible wire types and
// treats a missing or mistyped value as absent.

func stringArg(args map[string]any, key string) string {
	v, ok := args[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func stringPtrArg(args map[string]any, key string) *string {
	s := stringArg(args, key)
	if s == "" {
		return nil
	}
	return &s
}

func boolPtrArg(args map[string]any, key string) *bool {
	v, ok := args[key]
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil
	}
	return &b
}

func floatPtrArg(args map[string]any, key string) *float64 {
	v, ok := args[key]
	if !ok {
		return nil
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return nil
	}
	if f == 0 {
		return nil
	}
	return &f
}

func intPtrArg(args map[string]any, key string) *int {
	f := floatPtrArg(args, key)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

func int64PtrArg(args map[string]any, key string) *int64 {
	f := floatPtrArg(args, key)
	if f == nil {
		return nil
	}
	n := int64(*f)
	return &n
}

func boolArg(args map[string]any, key string) bool {
	b := boolPtrArg(args, key)
	return b != nil && *b
}
