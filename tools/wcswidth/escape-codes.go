// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package wcswidth

import (
	"fmt"
	"strings"

	"github.com/termcells/termcells/tools/unicode_data"
)

var _ = fmt.Print

type escape_state uint8
type csi_char_type uint8

const (
	normal escape_state = iota
	esc
	csi
	csi_intermediate
	st
	st_or_bel
	esc_st
)

const (
	unknown_csi_char csi_char_type = iota
	parameter_csi_char
	intermediate_csi_char
	final_csi_char
)

const c1_introducers = "\u0090\u0098\u009b\u009d\u009e\u009f"

func csi_type(ch rune) csi_char_type {
	if (0x30 <= ch && ch <= 0x3f) || ch == '-' {
		return parameter_csi_char
	}
	if 0x40 <= ch && ch <= 0x7E {
		return final_csi_char
	}
	if 0x20 <= ch && ch <= 0x2F {
		return intermediate_csi_char
	}
	return unknown_csi_char
}

type escape_code_stripper struct {
	state escape_state
	out   strings.Builder
}

func (self *escape_code_stripper) feed(ch rune) {
	switch self.state {
	case normal:
		switch ch {
		case 0x1b:
			self.state = esc
		case 0x9b:
			self.state = csi
		case 0x9d:
			self.state = st_or_bel
		case 0x90, 0x98, 0x9e, 0x9f:
			self.state = st
		default:
			self.out.WriteRune(ch)
		}
	case esc:
		switch ch {
		case '[':
			self.state = csi
		case ']':
			self.state = st_or_bel
		case 'P', 'X', '^', '_':
			self.state = st
		case 'D', 'E', 'H', 'M', 'N', 'O', 'Z', '6', '7', '8', '9', '=', '>', 'F', 'c', 'l', 'm', 'n', 'o', '|', '}', '~':
			self.state = normal
		default:
			// a dangling Esc is dropped and the char after it is displayed
			self.state = normal
			self.feed(ch)
		}
	case csi, csi_intermediate:
		switch csi_type(ch) {
		case final_csi_char, unknown_csi_char:
			self.state = normal
		case intermediate_csi_char:
			self.state = csi_intermediate
		case parameter_csi_char:
			if self.state == csi_intermediate {
				self.state = normal
			}
		}
	case st_or_bel:
		if ch == 0x7 {
			self.state = normal
			return
		}
		fallthrough
	case st:
		switch ch {
		case 0x1b:
			self.state = esc_st
		case 0x9c:
			self.state = normal
		}
	case esc_st:
		switch ch {
		case '\\':
			self.state = normal
		case 0x1b:
		default:
			self.state = st
		}
	}
}

// StripEscapeCodes removes CSI, OSC, DCS, APC, PM and SOS escape codes, in
// both their 7-bit and C1 forms, from text, leaving only what a terminal
// would display.
func StripEscapeCodes(text string) string {
	if strings.IndexByte(text, 0x1b) < 0 && !strings.ContainsAny(text, c1_introducers) {
		return text
	}
	s := escape_code_stripper{}
	s.out.Grow(len(text))
	for _, ch := range text {
		s.feed(ch)
	}
	return s.out.String()
}

// StringwidthIgnoringEscapeCodes is StringwidthWithTable for text that may
// contain escape codes such as SGR formatting.
func StringwidthIgnoringEscapeCodes(text string, table *unicode_data.CellTable) int {
	return StringwidthWithTable(StripEscapeCodes(text), table)
}
