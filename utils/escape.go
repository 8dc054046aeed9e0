package utils

import (
	"fmt"

	_ "unsafe"
)

// These functions allow defeat of the escape analysis to prevent heap allocations.
// It is the caller responsibility to ensure this is safe

func _appendf(buf []byte, format string, v ...any) []byte {
	return fmt.Appendf(buf, format, v...)
}

func _sprintf(format string, v ...any) string {
	return fmt.Sprintf(format, v...)
}

//go:noescape
//go:linkname AppendfNoEscape github.com/hwf452/CudaMiner/utils._appendf
func AppendfNoEscape(buf []byte, format string, v ...any) []byte

//go:noescape
//go:linkname SprintfNoEscape github.com/hwf452/CudaMiner/utils._sprintf
func SprintfNoEscape(format string, v ...any) string
