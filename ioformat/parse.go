package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tim5451003/placement/model"
)

// Parse reads the text input format from r and returns a populated
// Placement. Malformed cell and net records are skipped rather than
// aborting the parse; only a malformed or missing grid-dimension header
// returns an error, since no Placement can be constructed without it.
func Parse(r io.Reader) (*model.Placement, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	width, height, err := readDimensions(scanner)
	if err != nil {
		return nil, err
	}
	p := model.NewPlacement(width, height)

	numCells := readCount(scanner)
	for i := 0; i < numCells; i++ {
		line, ok := nextLine(scanner)
		if !ok {
			break
		}
		c, ok := parseCellLine(line)
		if !ok {
			continue
		}
		_ = p.AddCell(c) // a duplicate id is a malformed record: skip silently
	}

	numNets := readCount(scanner)
	for i := 0; i < numNets; i++ {
		line, ok := nextLine(scanner)
		if !ok {
			break
		}
		n, ok := parseNetLine(line)
		if !ok {
			continue
		}
		p.AddNet(n)
	}

	p.Refresh()
	return p, nil
}

func readDimensions(scanner *bufio.Scanner) (width, height int, err error) {
	line, ok := nextLine(scanner)
	if !ok {
		return 0, 0, fmt.Errorf("ioformat: missing grid dimension header")
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("ioformat: malformed grid dimension header %q", line)
	}
	w, errW := strconv.Atoi(fields[0])
	h, errH := strconv.Atoi(fields[1])
	if errW != nil || errH != nil {
		return 0, 0, fmt.Errorf("ioformat: malformed grid dimension header %q", line)
	}
	return w, h, nil
}

// readCount reads a single integer count line; 0 on a missing or malformed
// line, treating it as "no further records" rather than a fatal error.
func readCount(scanner *bufio.Scanner) int {
	line, ok := nextLine(scanner)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func nextLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}

// parseCellLine parses "<id> <x> <y> <w> <h> [fixed]". Returns ok=false if
// the record is malformed (wrong field count or non-integer field).
func parseCellLine(line string) (model.Cell, bool) {
	fields := strings.Fields(line)
	if len(fields) != 5 && len(fields) != 6 {
		return model.Cell{}, false
	}
	ints := make([]int, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return model.Cell{}, false
		}
		ints[i] = v
	}
	fixed := false
	if len(fields) == 6 {
		switch fields[5] {
		case "fixed", "1", "true":
			fixed = true
		}
	}
	return model.Cell{
		ID: ints[0], X: ints[1], Y: ints[2], W: ints[3], H: ints[4],
		Fixed: fixed,
	}, true
}

// parseNetLine parses "<net_id> <num_pins> [<cell_id> <off_x> <off_y>]x
// num_pins". Returns ok=false if the record is malformed.
func parseNetLine(line string) (model.Net, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return model.Net{}, false
	}
	netID, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Net{}, false
	}
	numPins, err := strconv.Atoi(fields[1])
	if err != nil || numPins < 0 {
		return model.Net{}, false
	}
	if len(fields) != 2+3*numPins {
		return model.Net{}, false
	}

	pins := make([]model.Pin, 0, numPins)
	for i := 0; i < numPins; i++ {
		base := 2 + 3*i
		cellID, err1 := strconv.Atoi(fields[base])
		offX, err2 := strconv.Atoi(fields[base+1])
		offY, err3 := strconv.Atoi(fields[base+2])
		if err1 != nil || err2 != nil || err3 != nil {
			return model.Net{}, false
		}
		pins = append(pins, model.Pin{CellID: cellID, OffsetX: offX, OffsetY: offY})
	}
	return model.Net{ID: netID, Pins: pins}, true
}
