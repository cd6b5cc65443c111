package charinfo

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/glyph"
)

//go:embed blocks.yaml
var defaultBlocks []byte

// ErrBadBlock is returned for a malformed or overlapping block entry.
var ErrBadBlock = errors.New("invalid block")

// Block is a named contiguous codepoint range.
type Block struct {
	Start, End glyph.Codepoint
	Name       string
}

// Contains reports whether cp is in the block.
func (b Block) Contains(cp glyph.Codepoint) bool {
	return cp >= b.Start && cp <= b.End
}

// BlockTable is a sorted set of non-overlapping blocks.
type BlockTable struct {
	blocks []Block
}

type blockFile struct {
	Blocks []struct {
		Range string `yaml:"range"`
		Name  string `yaml:"name"`
	} `yaml:"blocks"`
}

// DefaultBlocks returns the embedded block table.
func DefaultBlocks() *BlockTable {
	t, err := ParseBlocks(defaultBlocks)
	if err != nil {
		panic(fmt.Sprintf("charinfo: embedded blocks: %v", err))
	}
	return t
}

// LoadBlocks reads a block table from a YAML file.
func LoadBlocks(path string) (*BlockTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening block table: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading block table: %w", err)
	}
	t, err := ParseBlocks(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseBlocks parses a YAML block table.
func ParseBlocks(data []byte) (*BlockTable, error) {
	var f blockFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding block table: %w", err)
	}

	blocks := make([]Block, 0, len(f.Blocks))
	for i, e := range f.Blocks {
		b, err := parseRange(e.Range)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		b.Name = strings.TrimSpace(e.Name)
		if b.Name == "" {
			return nil, fmt.Errorf("entry %d: %w: missing name", i, ErrBadBlock)
		}
		blocks = append(blocks, b)
	}
	return NewBlockTable(blocks)
}

// NewBlockTable builds a table from blocks in any order.
func NewBlockTable(blocks []Block) (*BlockTable, error) {
	sorted := append([]Block(nil), blocks...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start <= sorted[i-1].End {
			return nil, fmt.Errorf("%w: %q overlaps %q", ErrBadBlock, sorted[i].Name, sorted[i-1].Name)
		}
	}
	return &BlockTable{blocks: sorted}, nil
}

func parseRange(s string) (Block, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "..")
	if !ok {
		return Block{}, fmt.Errorf("%w: range %q", ErrBadBlock, s)
	}
	start, err1 := strconv.ParseInt(lo, 16, 32)
	end, err2 := strconv.ParseInt(hi, 16, 32)
	if err1 != nil || err2 != nil || end < start {
		return Block{}, fmt.Errorf("%w: range %q", ErrBadBlock, s)
	}
	return Block{Start: glyph.Codepoint(start), End: glyph.Codepoint(end)}, nil
}

// Lookup returns the block containing cp.
func (t *BlockTable) Lookup(cp glyph.Codepoint) (Block, bool) {
	if t == nil {
		return Block{}, false
	}
	i := sort.Search(len(t.blocks), func(i int) bool { return t.blocks[i].End >= cp })
	if i < len(t.blocks) && t.blocks[i].Contains(cp) {
		return t.blocks[i], true
	}
	return Block{}, false
}

// Len returns the number of blocks.
func (t *BlockTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.blocks)
}
