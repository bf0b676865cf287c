package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/ben256dev/seren/shared/gamemath"
)

// ParseGeometry reads whitespace-separated "x y" pairs, one point per line,
// until maxPoints points have been read. Ingestion stops silently at the
// first line that does not hold two floats; blank lines are skipped.
// Only read errors from r are returned.
func ParseGeometry(r io.Reader, maxPoints int) (Geometry, error) {
	var points Geometry
	scanner := bufio.NewScanner(r)
	for len(points) < maxPoints && scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		p, ok := parsePoint(fields)
		if !ok {
			break
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return points, fmt.Errorf("read geometry: %w", err)
	}
	return points, nil
}

func parsePoint(fields []string) (gamemath.Vec2, bool) {
	if len(fields) < 2 {
		return gamemath.Zero, false
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return gamemath.Zero, false
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return gamemath.Zero, false
	}
	return gamemath.V(float32(x), float32(y)), true
}

// LoadGeometry opens path within fsys and parses it with ParseGeometry.
// It takes an fs.FS so callers can pass os.DirFS or an in-memory FS.
func LoadGeometry(fsys fs.FS, path string, maxPoints int) (Geometry, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	return ParseGeometry(f, maxPoints)
}
