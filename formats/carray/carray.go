// SPDX-License-Identifier: EPL-2.0

package carray

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// ValuesPerLine is how many samples share a line of the array literal.
const ValuesPerLine = 16

const indent = "    "

// Constant is a scalar emitted after the array as `const Type Name = Value;`.
type Constant struct {
	Type  string
	Name  string
	Value string
}

// Layout describes everything around the sample values.
type Layout struct {
	// Name is the array identifier; NAME_size is always emitted.
	Name string
	// Comments are emitted as leading // lines.
	Comments []string
	// Trailers follow NAME_size.
	Trailers []Constant
}

var identifierRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var reserved = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "struct": true, "switch": true, "typedef": true, "union": true,
	"unsigned": true, "void": true, "volatile": true, "while": true,
}

// ValidIdentifier reports whether name can be used as a C identifier.
func ValidIdentifier(name string) bool {
	return identifierRE.MatchString(name) && !reserved[name]
}

// FormatReal prints v the way a default C++ ostream does (%g, 6 digits).
func FormatReal(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Write renders samples as a C array described by layout.
func Write(w io.Writer, samples []int16, layout Layout) error {
	if !ValidIdentifier(layout.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, layout.Name)
	}

	bw := bufio.NewWriter(w)

	for _, c := range layout.Comments {
		bw.WriteString("// ")
		bw.WriteString(c)
		bw.WriteByte('\n')
	}
	if len(layout.Comments) > 0 {
		bw.WriteByte('\n')
	}

	bw.WriteString("#include <stdint.h>\n\n")
	fmt.Fprintf(bw, "const int16_t %s[] = {\n", layout.Name)

	var num []byte
	last := len(samples) - 1
	for i, s := range samples {
		if i%ValuesPerLine == 0 {
			bw.WriteString(indent)
		}

		num = strconv.AppendInt(num[:0], int64(s), 10)
		bw.Write(num)

		if i == last {
			bw.WriteByte('\n')
			break
		}
		if (i+1)%ValuesPerLine == 0 {
			bw.WriteString(",\n")
		} else {
			bw.WriteString(", ")
		}
	}

	bw.WriteString("};\n\n")
	fmt.Fprintf(bw, "const size_t %s_size = %d;\n", layout.Name, len(samples))
	for _, c := range layout.Trailers {
		fmt.Fprintf(bw, "const %s %s = %s;\n", c.Type, c.Name, c.Value)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing C array %s: %w", layout.Name, err)
	}

	return nil
}
