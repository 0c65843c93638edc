// Package layout builds xrandr argument lists from a parsed output
// listing. All functions are pure: they take the connected outputs in
// listing order and return the argv to hand to the runner, or an error
// when the listing cannot satisfy the directive.
package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beamer-cli/beamer/pkg/xrandr"
)

// Side is a relative placement of the secondary output.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideAbove Side = "above"
	SideBelow Side = "below"
)

var sideFlags = map[Side]string{
	SideLeft:  "--left-of",
	SideRight: "--right-of",
	SideAbove: "--above",
	SideBelow: "--below",
}

type resolution struct {
	width, height int
}

// CloneArgs mirrors every connected output at the largest resolution
// all of them support.
func CloneArgs(outputs []xrandr.Output) ([]string, error) {
	if len(outputs) == 0 {
		return nil, fmt.Errorf("no connected outputs")
	}

	common := map[resolution]bool{}
	for _, m := range outputs[0].Modes {
		common[resolution{m.Width, m.Height}] = true
	}
	for _, out := range outputs[1:] {
		supported := map[resolution]bool{}
		for _, m := range out.Modes {
			r := resolution{m.Width, m.Height}
			if common[r] {
				supported[r] = true
			}
		}
		common = supported
	}

	var best resolution
	for r := range common {
		if r.width > best.width || (r.width == best.width && r.height > best.height) {
			best = r
		}
	}
	if best.width == 0 {
		return nil, fmt.Errorf("no resolution supported by all %d outputs", len(outputs))
	}

	mode := fmt.Sprintf("%dx%d", best.width, best.height)
	args := []string{"--output", outputs[0].Name, "--mode", mode}
	for _, out := range outputs[1:] {
		args = append(args, "--output", out.Name, "--mode", mode, "--same-as", outputs[0].Name)
	}
	return args, nil
}

// SideArgs places the secondary output beside the main one.
func SideArgs(side Side, outputs []xrandr.Output) ([]string, error) {
	flag, ok := sideFlags[side]
	if !ok {
		return nil, fmt.Errorf("unknown side %q", side)
	}
	if len(outputs) != 2 {
		return nil, fmt.Errorf("which outputs should I use? found %d connected, need exactly 2", len(outputs))
	}
	return []string{
		"--output", outputs[0].Name, "--auto",
		"--output", outputs[1].Name, "--auto", flag, outputs[0].Name,
	}, nil
}

// SingleArgs activates the output at the given listing position
// (0-based) and disables every other connected output.
func SingleArgs(index int, outputs []xrandr.Output) ([]string, error) {
	if index < 0 || index >= len(outputs) {
		return nil, fmt.Errorf("no connected output at position %d, found %d", index+1, len(outputs))
	}
	args := []string{"--output", outputs[index].Name, "--auto"}
	for i, out := range outputs {
		if i == index {
			continue
		}
		args = append(args, "--output", out.Name, "--off")
	}
	return args, nil
}

// RowArgs arranges the named outputs left to right. Entries are
// 1-based listing positions or output names; a trailing "!" marks the
// primary output. Connected outputs not in the row are turned off.
// Duplicate entries are passed through so xrandr can report them.
func RowArgs(entries []string, outputs []xrandr.Output) ([]string, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no outputs specified")
	}

	byName := map[string]int{}
	for i, out := range outputs {
		byName[out.Name] = i
	}

	type rowEntry struct {
		name    string
		primary bool
	}
	row := make([]rowEntry, 0, len(entries))
	for _, entry := range entries {
		primary := strings.HasSuffix(entry, "!")
		entry = strings.TrimSuffix(entry, "!")
		if n, err := strconv.Atoi(entry); err == nil {
			if n < 1 || n > len(outputs) {
				return nil, fmt.Errorf("could not find output number %d", n)
			}
			row = append(row, rowEntry{name: outputs[n-1].Name, primary: primary})
			continue
		}
		if _, ok := byName[entry]; !ok {
			return nil, fmt.Errorf("could not find output %q", entry)
		}
		row = append(row, rowEntry{name: entry, primary: primary})
	}

	args := []string{"--output", row[0].name, "--auto"}
	if row[0].primary {
		args = append(args, "--primary")
	}
	for i, entry := range row[1:] {
		args = append(args, "--output", entry.name, "--auto", "--right-of", row[i].name)
		if entry.primary {
			args = append(args, "--primary")
		}
	}

	inRow := map[string]bool{}
	for _, entry := range row {
		inRow[entry.name] = true
	}
	for _, out := range outputs {
		if !inRow[out.Name] {
			args = append(args, "--output", out.Name, "--off")
		}
	}
	return args, nil
}
