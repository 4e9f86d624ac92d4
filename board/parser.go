package board

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// exitPattern matches a Salida line, case-insensitively, tolerating
// whitespace around the colon and the comma.
var exitPattern = regexp.MustCompile(`(?i)^salida\s*:\s*(-?\d+)\s*,\s*(-?\d+)\s*$`)

// exitLinePattern recognizes a Salida line by its leading "Salida:" alone,
// so a line with unparseable coordinates still terminates the board and
// is then rejected by parseExit as malformed.
var exitLinePattern = regexp.MustCompile(`(?i)^\s*salida\s*:`)

// token membership: horizontal-axis tokens, vertical-axis tokens. 'B' is
// deliberately absent from both sets and handled as the ambiguous case.
const (
	tokEmpty = '.'
	tokGoal  = 'B'
)

var horizontalTokens = map[byte]bool{'-': true, '>': true, '<': true}
var verticalTokens = map[byte]bool{'|': true, 'v': true}

// Parse converts puzzle text into a Board. See package doc for the
// expected format and the error kinds below.
func Parse(text string) (*Board, error) {
	lines := normalizeLines(text)
	if len(lines) == 0 {
		return nil, ErrEmptyPuzzle
	}

	exitLineIdx := -1
	for i, l := range lines {
		if exitLinePattern.MatchString(l) {
			exitLineIdx = i
			break
		}
	}
	if exitLineIdx == -1 {
		return nil, ErrMissingExit
	}

	boardLines := lines[:exitLineIdx]
	if len(boardLines) == 0 {
		return nil, ErrEmptyBoard
	}

	exit, err := parseExit(lines[exitLineIdx])
	if err != nil {
		return nil, err
	}

	grid, err := tokenizeGrid(boardLines)
	if err != nil {
		return nil, err
	}

	vehicles, goalIndex, err := extractVehicles(grid)
	if err != nil {
		return nil, err
	}

	return &Board{
		Rows:      len(grid),
		Cols:      len(grid[0]),
		Exit:      exit,
		Vehicles:  vehicles,
		GoalIndex: goalIndex,
	}, nil
}

// normalizeLines splits on LF/CRLF, strips trailing whitespace from each
// line, and drops lines that are blank after trimming.
func normalizeLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, " \t\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

func parseExit(line string) (Cell, error) {
	m := exitPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Cell{}, ErrMalformedExit
	}
	row, err1 := strconv.Atoi(m[1])
	col, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return Cell{}, ErrMalformedExit
	}
	return Cell{Row: row, Col: col}, nil
}

// tokenizeGrid splits each board line on whitespace; all rows must
// tokenize to the same column count.
func tokenizeGrid(lines []string) ([][]byte, error) {
	grid := make([][]byte, len(lines))
	cols := -1
	for i, line := range lines {
		fields := strings.Fields(line)
		if cols == -1 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, ErrRaggedBoard
		}
		row := make([]byte, cols)
		for j, f := range fields {
			if len(f) != 1 {
				return nil, fmt.Errorf("%w: %q", ErrInvalidToken, f)
			}
			row[j] = f[0]
		}
		grid[i] = row
	}
	return grid, nil
}

// extractVehicles scans grid in row-major order, growing one vehicle from
// each unvisited non-empty cell, per the disambiguation rules in the
// package doc. It returns the vehicles in discovery order and the index
// of the goal vehicle.
func extractVehicles(grid [][]byte) ([]Vehicle, int, error) {
	rows := len(grid)
	cols := len(grid[0])
	visited := make([][]bool, rows)
	for i := range visited {
		visited[i] = make([]bool, cols)
	}

	var vehicles []Vehicle
	goalIndex := -1
	nextLabel := 1

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if visited[r][c] || grid[r][c] == tokEmpty {
				continue
			}
			if !validToken(grid[r][c]) {
				return nil, -1, fmt.Errorf("%w: %q", ErrInvalidToken, string(grid[r][c]))
			}

			orient, err := disambiguate(grid, visited, r, c)
			if err != nil {
				return nil, -1, err
			}

			cells, isGoal := grow(grid, visited, r, c, orient)
			isGoal = isGoal && goalIndex == -1 // only the first 'B' vehicle is the goal

			v := Vehicle{
				Orientation: orient,
				Length:      len(cells),
				IsGoal:      isGoal,
				Anchor:      Cell{Row: r, Col: c},
			}
			if isGoal {
				v.Label = "carro objetivo"
				goalIndex = len(vehicles)
			} else {
				v.Label = strconv.Itoa(nextLabel)
				nextLabel++
			}
			vehicles = append(vehicles, v)
		}
	}

	if goalIndex == -1 {
		return nil, -1, ErrNoGoalVehicle
	}
	return vehicles, goalIndex, nil
}

func validToken(tok byte) bool {
	return tok == tokGoal || horizontalTokens[tok] || verticalTokens[tok]
}

// disambiguate decides the orientation of the vehicle seeded at (r, c).
// Horizontal- and vertical-only tokens decide it directly. The
// ambiguous 'B' token is resolved from its immediate row/column
// neighbors; if neither is present, the vehicle is Single.
func disambiguate(grid [][]byte, visited [][]bool, r, c int) (Orientation, error) {
	tok := grid[r][c]
	switch {
	case horizontalTokens[tok]:
		return Horizontal, nil
	case verticalTokens[tok]:
		return Vertical, nil
	case tok == tokGoal:
		// 'B' belongs to both sets, so an adjacent 'B' on either axis
		// counts as membership in that axis's set too.
		if hasAxisNeighbor(grid, r, c, 0, -1, horizontalTokens) || hasAxisNeighbor(grid, r, c, 0, 1, horizontalTokens) ||
			hasToken(grid, r, c, 0, -1, tokGoal) || hasToken(grid, r, c, 0, 1, tokGoal) {
			return Horizontal, nil
		}
		if hasAxisNeighbor(grid, r, c, -1, 0, verticalTokens) || hasAxisNeighbor(grid, r, c, 1, 0, verticalTokens) ||
			hasToken(grid, r, c, -1, 0, tokGoal) || hasToken(grid, r, c, 1, 0, tokGoal) {
			return Vertical, nil
		}
		return Single, nil
	default:
		return Single, fmt.Errorf("%w: %q", ErrInvalidToken, string(tok))
	}
}

func hasAxisNeighbor(grid [][]byte, r, c, dr, dc int, set map[byte]bool) bool {
	nr, nc := r+dr, c+dc
	if nr < 0 || nr >= len(grid) || nc < 0 || nc >= len(grid[0]) {
		return false
	}
	return set[grid[nr][nc]]
}

func hasToken(grid [][]byte, r, c, dr, dc int, want byte) bool {
	nr, nc := r+dr, c+dc
	if nr < 0 || nr >= len(grid) || nc < 0 || nc >= len(grid[0]) {
		return false
	}
	return grid[nr][nc] == want
}

// grow absorbs contiguous same-axis tokens (including further 'B's)
// starting at the seed cell, marking each as visited. It reports
// whether any absorbed cell carried the 'B' token.
func grow(grid [][]byte, visited [][]bool, r, c int, orient Orientation) ([]Cell, bool) {
	var dr, dc int
	switch orient {
	case Horizontal:
		dc = 1
	case Vertical:
		dr = 1
	default:
		visited[r][c] = true
		return []Cell{{Row: r, Col: c}}, grid[r][c] == tokGoal
	}

	set := horizontalTokens
	if orient == Vertical {
		set = verticalTokens
	}

	cells := []Cell{{Row: r, Col: c}}
	isGoal := grid[r][c] == tokGoal
	visited[r][c] = true

	nr, nc := r+dr, c+dc
	for nr < len(grid) && nc < len(grid[0]) && !visited[nr][nc] {
		tok := grid[nr][nc]
		if !(set[tok] || tok == tokGoal) {
			break
		}
		cells = append(cells, Cell{Row: nr, Col: nc})
		if tok == tokGoal {
			isGoal = true
		}
		visited[nr][nc] = true
		nr += dr
		nc += dc
	}
	return cells, isGoal
}
