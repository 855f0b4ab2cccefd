package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/credao/gardengrid/internal/core/domain"
)

// cellList collects repeated x,y grid cells.
type cellList []domain.GridPosition

func (l *cellList) String() string {
	parts := make([]string, len(*l))
	for i, p := range *l {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func (l *cellList) Set(s string) error {
	p, err := parseCell(s)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

// dragList collects repeated x0,y0:x1,y1 drags.
type dragList [][2]domain.GridPosition

func (l *dragList) String() string { return fmt.Sprint(*l) }

func (l *dragList) Set(s string) error {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("drag %q: want x0,y0:x1,y1", s)
	}
	a, err := parseCell(from)
	if err != nil {
		return err
	}
	b, err := parseCell(to)
	if err != nil {
		return err
	}
	*l = append(*l, [2]domain.GridPosition{a, b})
	return nil
}

// pointList collects repeated x,y pixel positions.
type pointList []domain.Pixel

func (l *pointList) String() string { return fmt.Sprint(*l) }

func (l *pointList) Set(s string) error {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return fmt.Errorf("point %q: %w", s, err)
	}
	*l = append(*l, domain.Pixel{X: x, Y: y})
	return nil
}

// dimension is a grid width, height or size in metres.
type dimension uint32

func (d *dimension) String() string { return strconv.FormatUint(uint64(*d), 10) }

func (d *dimension) Set(s string) error {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return fmt.Errorf("dimension %q: %w", s, err)
	}
	*d = dimension(v)
	return nil
}

func parseCell(s string) (domain.GridPosition, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return domain.GridPosition{}, fmt.Errorf("cell %q: want x,y", s)
	}
	x, err := strconv.ParseUint(strings.TrimSpace(xs), 10, 32)
	if err != nil {
		return domain.GridPosition{}, fmt.Errorf("cell %q: %w", s, err)
	}
	y, err := strconv.ParseUint(strings.TrimSpace(ys), 10, 32)
	if err != nil {
		return domain.GridPosition{}, fmt.Errorf("cell %q: %w", s, err)
	}
	return domain.GridPosition{X: uint32(x), Y: uint32(y)}, nil
}
