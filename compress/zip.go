package compress

// ZIPCodec implements compression method ZIP: one scan line per block.
type ZIPCodec struct{}

var _ Codec = ZIPCodec{}

func (ZIPCodec) Compress(data []byte) ([]byte, error) { return zipCompress(data) }
func (ZIPCodec) Decompress(data []byte, expectedSize int) ([]byte, error) {
	return zipDecompress(data, expectedSize)
}
func (ZIPCodec) RowsPerBlock() int { return 1 }

// ZIP16Codec implements compression method ZIP16: the same predictor,
// byte-interleave, and zlib pipeline as ZIPCodec, but over 16 scan
// lines per block.
type ZIP16Codec struct{}

var _ Codec = ZIP16Codec{}

func (ZIP16Codec) Compress(data []byte) ([]byte, error) { return zipCompress(data) }
func (ZIP16Codec) Decompress(data []byte, expectedSize int) ([]byte, error) {
	return zipDecompress(data, expectedSize)
}
func (ZIP16Codec) RowsPerBlock() int { return 16 }

// zipPredictAndInterleave applies EXR's ZIP transform: a byte-wise
// difference predictor biased by 128, followed by splitting the
// buffer into even- and odd-offset halves so that runs of similar
// byte values (common across same-channel samples) cluster for zlib
// to exploit.
func zipPredictAndInterleave(data []byte) []byte {
	n := len(data)
	t := make([]byte, n)
	if n > 0 {
		t[0] = data[0]
	}
	for i := 1; i < n; i++ {
		t[i] = data[i] - data[i-1] + 128
	}

	out := make([]byte, n)
	half := (n + 1) / 2
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			out[i/2] = t[i]
		} else {
			out[half+i/2] = t[i]
		}
	}

	return out
}

func zipDeinterleaveAndUnpredict(data []byte) []byte {
	n := len(data)
	half := (n + 1) / 2
	t := make([]byte, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			t[i] = data[i/2]
		} else {
			t[i] = data[half+i/2]
		}
	}
	for i := 1; i < n; i++ {
		t[i] = t[i-1] + t[i] - 128
	}

	return t
}

func zipCompress(data []byte) ([]byte, error) {
	return deflate(zipPredictAndInterleave(data))
}

func zipDecompress(data []byte, expectedSize int) ([]byte, error) {
	transformed, err := inflate(data, expectedSize)
	if err != nil {
		return nil, err
	}

	return zipDeinterleaveAndUnpredict(transformed), nil
}
