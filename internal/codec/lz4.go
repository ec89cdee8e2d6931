package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4 wraps github.com/pierrec/lz4/v4 as a ByteCodec, parameterized by
// compression level. Level 0 uses the library default; levels 1 through 9
// select the library's Level1..Level9, and any higher level uses Level9.
type LZ4 struct {
	Level int
}

func (LZ4) Tag() Tag { return TagLZ4 }

func (c LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	var opts []lz4.Option
	if c.Level > 0 {
		level := c.Level
		if level > 9 {
			level = 9
		}
		opts = append(opts, lz4.CompressionLevelOption(lz4.Level1<<uint(level-1)))
	}
	if err := w.Apply(opts...); err != nil {
		return nil, fmt.Errorf("lz4: apply options: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lz4: compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4: close writer: %w", err)
	}
	return buf.Bytes(), nil
}

func (LZ4) Decompress(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lz4: decompress: %w", err)
	}
	return out, nil
}
