// Package maya writes Maya ASCII (.ma) statements.
//
// A Buffer is append-only: every method adds one complete statement line and
// never touches what was written before. The literal attribute codes passed
// in by callers (".tan", ".ktv", ".tx" ...) are part of the file format.
package maya

import (
	"io"
	"strconv"
	"strings"
)

// Buffer is an ordered, append-only sequence of statement lines.
type Buffer struct {
	sb    strings.Builder
	lines int
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Line appends a raw line. A trailing newline is added.
func (b *Buffer) Line(s string) {
	b.sb.WriteString(s)
	b.sb.WriteByte('\n')
	b.lines++
}

// Comment appends a "//" comment line.
func (b *Buffer) Comment(s string) {
	b.Line("//" + s)
}

// CreateNode appends `createNode <type> -n "<name>"[ -p "<parent>"];`.
func (b *Buffer) CreateNode(nodeType, name, parent string) {
	var sb strings.Builder
	sb.WriteString("createNode ")
	sb.WriteString(nodeType)
	sb.WriteString(" -n ")
	sb.WriteString(Quote(name))
	if parent != "" {
		sb.WriteString(" -p ")
		sb.WriteString(Quote(parent))
	}
	sb.WriteByte(';')
	b.Line(sb.String())
}

// SetAttr appends `\tsetAttr "<attr>" v1 v2 ...;`.
func (b *Buffer) SetAttr(attr string, values ...any) {
	b.Line("\tsetAttr " + Quote(attr) + joinValues(values) + ";")
}

// SetAttrTyped appends `\tsetAttr "<attr>" -type "<type>" v1 v2 ...;`.
func (b *Buffer) SetAttrTyped(attr, dataType string, values ...any) {
	b.Line("\tsetAttr " + Quote(attr) + " -type " + Quote(dataType) + joinValues(values) + ";")
}

// SetAttrSize appends `\tsetAttr -s <n> "<attr>" v1 v2 ...;`.
func (b *Buffer) SetAttrSize(attr string, n int, values ...any) {
	b.Line("\tsetAttr -s " + strconv.Itoa(n) + " " + Quote(attr) + joinValues(values) + ";")
}

// SetAttrSizeTyped appends `\tsetAttr -s <n> "<attr>" -type "<type>" v1 ...;`.
func (b *Buffer) SetAttrSizeTyped(attr string, n int, dataType string, values ...any) {
	b.Line("\tsetAttr -s " + strconv.Itoa(n) + " " + Quote(attr) + " -type " + Quote(dataType) + joinValues(values) + ";")
}

// SetAttrNotKeyable appends `\tsetAttr -k off "<attr>";`.
func (b *Buffer) SetAttrNotKeyable(attr string) {
	b.Line("\tsetAttr -k off " + Quote(attr) + ";")
}

// ConnectAttr appends `connectAttr "<src>" "<dst>"[ -na];`.
func (b *Buffer) ConnectAttr(src, dst string, nextAvailable bool) {
	s := "connectAttr " + Quote(src) + " " + Quote(dst)
	if nextAvailable {
		s += " -na"
	}
	b.Line(s + ";")
}

// Append copies every line of other onto b, in order.
func (b *Buffer) Append(other *Buffer) {
	if other == nil {
		return
	}
	b.sb.WriteString(other.sb.String())
	b.lines += other.lines
}

// Len returns the number of lines written.
func (b *Buffer) Len() int {
	return b.lines
}

// String returns the buffer contents.
func (b *Buffer) String() string {
	return b.sb.String()
}

// Lines returns the buffer contents split into lines, without terminators.
func (b *Buffer) Lines() []string {
	s := strings.TrimSuffix(b.sb.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// WriteTo implements io.WriterTo.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.sb.String())
	return int64(n), err
}

func joinValues(values []any) string {
	if len(values) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, v := range values {
		sb.WriteByte(' ')
		sb.WriteString(FormatValue(v))
	}
	return sb.String()
}
