package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
)

// Shot is one scripted drag, pressed at Press and released at Release.
type Shot struct {
	Press   cp.Vector
	Release cp.Vector
}

// ParseShots reads a script of the form "px,py>rx,ry;px,py>rx,ry". Blank
// entries are skipped, so a trailing separator is allowed.
func ParseShots(script string) ([]Shot, error) {
	var shots []Shot
	for i, entry := range strings.Split(script, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		press, release, ok := strings.Cut(entry, ">")
		if !ok {
			return nil, fmt.Errorf("shot %d %q: missing '>'", i, entry)
		}

		var shot Shot
		var err error
		if shot.Press, err = parsePoint(press); err != nil {
			return nil, fmt.Errorf("shot %d press: %w", i, err)
		}
		if shot.Release, err = parsePoint(release); err != nil {
			return nil, fmt.Errorf("shot %d release: %w", i, err)
		}
		shots = append(shots, shot)
	}
	return shots, nil
}

func parsePoint(s string) (cp.Vector, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return cp.Vector{}, fmt.Errorf("point %q: want x,y", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return cp.Vector{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return cp.Vector{}, fmt.Errorf("point %q: %w", s, err)
	}
	return cp.Vector{X: x, Y: y}, nil
}
