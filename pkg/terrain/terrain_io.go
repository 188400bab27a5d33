package terrain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

// terrain map file format (bzip2 compressed):
//
//	<side>
//	<side lines of side runes each>

func (t *GridTerrain) WriteGridMap(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d\n", t.side)

	var sb strings.Builder
	for row := 0; row < t.side; row++ {
		sb.Reset()
		for col := 0; col < t.side; col++ {
			sb.WriteRune(t.SurfaceAt(row, col).Rune())
		}
		fmt.Fprintf(w, "%s\n", sb.String())
	}

	return w.Flush()
}

func ReadGridMap(filename string) (*GridTerrain, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	br := bufio.NewReader(bz)

	var side int
	if _, err := fmt.Fscanf(br, "%d\n", &side); err != nil {
		return nil, fmt.Errorf("bad terrain map header: %w", err)
	}

	lines := make([]string, 0, side)
	for i := 0; i < side; i++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if len(line) != side {
			return nil, fmt.Errorf("terrain map row %d has %d cells, want %d", i, len(line), side)
		}
		lines = append(lines, line)
	}

	return ParseGridMap(lines)
}
