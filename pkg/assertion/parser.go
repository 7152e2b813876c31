package assertion

import "strings"

// ParseCheckString parses a compact check string of the form
// "type:param" into its components. If no colon is present the
// entire string is treated as the type and param is empty.
//
// Examples:
//
//	"array_of:string"      -> ("array_of", "string")
//	"uuid"                 -> ("uuid", "")
//	"one_of:string,number" -> ("one_of", "string,number")
func ParseCheckString(
	s string,
) (checkType string, param string) {
	parts := strings.SplitN(s, ":", 2)
	checkType = parts[0]

	if len(parts) > 1 {
		param = parts[1]
	}

	return
}
