// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package settings

import "strings"

// acronymPrefixes are leading name segments that are uppercased as a whole
// when a setter name is derived (cssGridEnabled -> setCSSGridEnabled).
var acronymPrefixes = []string{"css", "xss", "ftp", "dom", "rtc"}

var idlTypes = map[string]string{
	TypeBool:     "boolean",
	TypeInt:      "long",
	TypeUnsigned: "unsigned long",
	TypeDouble:   "double",
	TypeFloat:    "float",
	TypeString:   "DOMString",
}

// IDLType maps a descriptor to its IDL type. The second result is false for
// types the generators do not support.
func IDLType(d Descriptor) (string, bool) {
	t, ok := idlTypes[d.Type]
	return t, ok
}

// SetterName derives the setter function name for a descriptor.
func SetterName(d Descriptor) string {
	for _, prefix := range acronymPrefixes {
		if strings.HasPrefix(d.Name, prefix) {
			return "set" + upperFirstN(d.Name, len(prefix))
		}
	}
	return "set" + upperFirstN(d.Name, 1)
}

// ParamType is the C++ parameter type of the generated setter.
func ParamType(d Descriptor) string {
	if d.Type == TypeString {
		return "const String&"
	}
	return d.Type
}

// ConditionalExpr renders the preprocessor expression for a descriptor's
// guard. "A&B" becomes "ENABLE(A) && ENABLE(B)"; a guard that already holds
// a macro call is used verbatim. Returns "" for unguarded descriptors.
func ConditionalExpr(d Descriptor) string {
	guard := strings.TrimSpace(d.Conditional)
	if guard == "" {
		return ""
	}
	if isVerbatimGuard(guard) {
		return guard
	}
	flags := splitGuard(guard)
	for i, f := range flags {
		flags[i] = "ENABLE(" + f + ")"
	}
	return strings.Join(flags, " && ")
}

func isVerbatimGuard(guard string) bool {
	return strings.Contains(guard, "(")
}

func splitGuard(guard string) []string {
	parts := strings.Split(strings.TrimSpace(guard), "&")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func upperFirstN(s string, n int) string {
	if n > len(s) {
		n = len(s)
	}
	return strings.ToUpper(s[:n]) + s[n:]
}
