package xrandr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Output header, e.g.
	//   eDP1 connected primary 1920x1080+0+0 (normal left inverted ...) 309mm x 173mm
	//   HDMI1 disconnected (normal left inverted right x axis y axis)
	outputRe = regexp.MustCompile(
		`^(\S+) ((?:dis)?connected)( primary)?(?: (\d+)x(\d+)([+-]\d+)([+-]\d+))? \(([^)]*)\)(?: (.*))?$`)

	// Indented mode line resolution token, e.g. "1920x1080". Interlaced
	// variants ("1920x1080i") are listed by xrandr but not selectable
	// through --mode the way beamer builds commands, so they are skipped.
	resolutionRe = regexp.MustCompile(`^(\d+)x(\d+)$`)
	interlacedRe = regexp.MustCompile(`^\d+x\d+i$`)

	// A refresh rate token: "60.01", "60.01*", "59.81+" or "60.00*+".
	rateRe = regexp.MustCompile(`^(\d+\.\d+)(\*)?(\+)?$`)
)

// Parse reads the full text of `xrandr --query` into Output entities,
// preserving listing order. Lines it does not recognize produce an
// error quoting the offending line rather than being dropped.
func Parse(query string) ([]Output, error) {
	var outputs []Output
	var current *Output

	for _, line := range strings.Split(query, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t"):
			if current == nil {
				return nil, fmt.Errorf("xrandr query: mode line before any output: %q", line)
			}
			mode, ok, err := parseModeLine(line)
			if err != nil {
				return nil, err
			}
			if ok {
				current.Modes = append(current.Modes, mode)
			}
		case strings.HasPrefix(line, "Screen "):
			// screen banner, nothing to keep
		default:
			out, err := parseOutputLine(line)
			if err != nil {
				return nil, err
			}
			if current != nil {
				outputs = append(outputs, *current)
			}
			current = &out
		}
	}
	if current != nil {
		outputs = append(outputs, *current)
	}
	return outputs, nil
}

func parseOutputLine(line string) (Output, error) {
	m := outputRe.FindStringSubmatch(line)
	if m == nil {
		return Output{}, fmt.Errorf("xrandr query: unrecognized line: %q", line)
	}
	out := Output{
		Name:         m[1],
		Connected:    m[2] == "connected",
		Primary:      m[3] != "",
		Info:         m[8],
		PhysicalSize: m[9],
	}
	if m[4] != "" {
		geo := Geometry{
			Width:   atoi(m[4]),
			Height:  atoi(m[5]),
			XOffset: atoi(m[6]),
			YOffset: atoi(m[7]),
		}
		out.Geometry = &geo
	}
	return out, nil
}

// parseModeLine reads one indented resolution line. The second return
// value is false for lines beamer ignores (interlaced modes).
func parseModeLine(line string) (Mode, bool, error) {
	fields := strings.Fields(line)
	if interlacedRe.MatchString(fields[0]) {
		return Mode{}, false, nil
	}
	res := resolutionRe.FindStringSubmatch(fields[0])
	if res == nil {
		return Mode{}, false, fmt.Errorf("xrandr query: unrecognized mode line: %q", line)
	}
	mode := Mode{Width: atoi(res[1]), Height: atoi(res[2])}

	// xrandr appends "*" to the active rate and "+" to the preferred
	// one; "+" lands in its own token when the rate is not active.
	first := 0.0
	for _, tok := range fields[1:] {
		if tok == "+" {
			mode.Preferred = true
			continue
		}
		rm := rateRe.FindStringSubmatch(tok)
		if rm == nil {
			return Mode{}, false, fmt.Errorf("xrandr query: unrecognized rate %q in line %q", tok, line)
		}
		rate, _ := strconv.ParseFloat(rm[1], 64)
		if first == 0 {
			first = rate
		}
		if rm[2] == "*" {
			mode.Active = true
			mode.Frequency = rate
		}
		if rm[3] == "+" {
			mode.Preferred = true
		}
	}
	if first == 0 {
		return Mode{}, false, fmt.Errorf("xrandr query: mode line without refresh rate: %q", line)
	}
	if mode.Frequency == 0 {
		mode.Frequency = first
	}
	return mode, true, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
