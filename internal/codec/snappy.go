package codec

import (
	"fmt"

	"github.com/golang/snappy"
)

// Snappy wraps github.com/golang/snappy as a ByteCodec.
type Snappy struct{}

func (Snappy) Tag() Tag { return TagSnappy }

func (Snappy) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (Snappy) Decompress(data []byte) ([]byte, error) {
	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("snappy: decompress: %w", err)
	}
	return out, nil
}
