// Package gz wraps gzip with fixed parameters so that identical input
// always produces identical output. Downstream caching and the
// multi-destination writes both rely on that.
package gz

import (
	"bytes"
	"compress/gzip"
	"io/ioutil"
)

// Compress gzips b at a fixed compression level. The output is a complete,
// standard gzip stream: the consumer only links a minimal decoder, so the
// container has to carry its own header and trailer.
func Compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}

	_, err = w.Write(b)
	if err != nil {
		w.Close()
		return nil, err
	}

	err = w.Close()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress with the stock reader. It exists to verify
// round-trips; the embedded bytes are decoded on-device, not here.
func Decompress(b []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	defer r.Close()
	return ioutil.ReadAll(r)
}
