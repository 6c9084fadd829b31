// Package gatecost parses the gate-cost profile text format used by the
// Application configuration group's GateCost scheme.
//
// Format: one rule per line, whitespace-separated, "<GATE_ID> <N_CONTROLS>
// <COST>". Blank lines and lines starting with "#" are skipped. Unknown
// gate ids fall back to a default cost of 1.
package gatecost

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mqt-go/eqcheck/config"
)

// Parse reads a gate-cost profile from r.
func Parse(r io.Reader) (config.CostProfile, error) {
	profile := config.CostProfile{DefaultCost: 1}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return config.CostProfile{}, fmt.Errorf("gatecost: line %d: expected 3 fields, got %d", lineNo, len(fields))
		}
		nControls, err := strconv.Atoi(fields[1])
		if err != nil {
			return config.CostProfile{}, fmt.Errorf("gatecost: line %d: invalid control count %q: %w", lineNo, fields[1], err)
		}
		cost, err := strconv.Atoi(fields[2])
		if err != nil {
			return config.CostProfile{}, fmt.Errorf("gatecost: line %d: invalid cost %q: %w", lineNo, fields[2], err)
		}
		profile.Rules = append(profile.Rules, config.CostRule{
			Gate:      fields[0],
			NControls: nControls,
			Cost:      cost,
		})
	}
	if err := scanner.Err(); err != nil {
		return config.CostProfile{}, err
	}
	return profile, nil
}

// ParseFile reads a gate-cost profile from the file at path.
func ParseFile(path string) (config.CostProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return config.CostProfile{}, err
	}
	defer f.Close()
	return Parse(f)
}
