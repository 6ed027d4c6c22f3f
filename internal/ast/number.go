package ast

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseNumber returns the value of a numeric literal as written in source.
func ParseNumber(raw string) (float64, bool) {
	s := strings.ReplaceAll(raw, "_", "")
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			var v float64
			for i := 2; i < len(s); i++ {
				d := digitVal(s[i])
				if d < 0 || d >= base {
					return 0, false
				}
				v = v*float64(base) + float64(d)
			}
			return v, true
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat отдаёт ±Inf с ошибкой диапазона; в JS это валидно
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// FormatNumber prints v the shortest way JavaScript would read back.
func FormatNumber(v float64) string {
	if v < 1e21 && v > -1e21 && v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
