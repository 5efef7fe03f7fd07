// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sink implements the character sink numbers are printed to.
package sink

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is the line length used when the terminal width is unknown.
const DefaultWidth = 70

// A Writer is a buffered io.ByteWriter that breaks long lines the way bc
// does: once a line holds width-1 characters, a backslash and a newline
// are inserted before the next character. A width below 2 disables line
// breaking.
type Writer struct {
	w     *bufio.Writer
	width int
	col   int
}

// New returns a Writer writing to w with the given line width.
func New(w io.Writer, width int) *Writer {
	return &Writer{w: bufio.NewWriter(w), width: width}
}

// WriteByte implements io.ByteWriter.
func (s *Writer) WriteByte(c byte) error {
	if c == '\n' {
		s.col = 0
		return s.w.WriteByte(c)
	}
	if s.width > 1 && s.col >= s.width-1 {
		if _, err := s.w.WriteString("\\\n"); err != nil {
			return err
		}
		s.col = 0
	}
	s.col++
	return s.w.WriteByte(c)
}

// WriteString writes str one byte at a time.
func (s *Writer) WriteString(str string) (int, error) {
	for i := 0; i < len(str); i++ {
		if err := s.WriteByte(str[i]); err != nil {
			return i, err
		}
	}
	return len(str), nil
}

// Newline ends the current line unless it is empty.
func (s *Writer) Newline() error {
	if s.col == 0 {
		return nil
	}
	return s.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (s *Writer) Flush() error {
	return s.w.Flush()
}

// Width returns width, or the width of the terminal f is attached to when
// width is negative. It falls back to DefaultWidth if f is not a
// terminal.
func Width(f *os.File, width int) int {
	if width >= 0 {
		return width
	}
	if f != nil && IsTerminal(f) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 1 {
			return w
		}
	}
	return DefaultWidth
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
