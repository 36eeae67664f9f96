package csa

import "strings"

// encodingComment is the V3.0 encoding declaration. Its presence selects the
// newest dialect even before any version line.
const encodingComment = "'CSA encoding="

// DetectVersion scans the input lines in order and reports which dialect the
// file declares. Comment lines are skipped unless they are an encoding
// declaration, which immediately selects V3.0. The first non-blank,
// non-comment line must be an exact version token; anything else means no
// dialect.
func DetectVersion(input string) (Version, bool) {
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, encodingComment) {
			return V30, true
		}
		if strings.HasPrefix(trimmed, "'") {
			continue
		}

		switch trimmed {
		case "V3.0":
			return V30, true
		case "V2.2":
			return V22, true
		case "V2.1":
			return V21, true
		case "V2":
			return V2, true
		}

		if trimmed != "" {
			return 0, false
		}
	}
	return 0, false
}
