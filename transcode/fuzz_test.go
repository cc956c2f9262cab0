package transcode

import (
	"bytes"
	"testing"

	"github.com/protoson/go-pson/encode"
	"github.com/protoson/go-pson/ir"
	"github.com/protoson/go-pson/wire"
)

func FuzzTranscode(f *testing.F) {
	seed, _ := wire.Marshal(sample())
	f.Add(seed)
	f.Add([]byte{0x60})
	f.Add([]byte{0x22, 0x03, 0x01, 'a', 0x58})
	f.Add([]byte{0x2a, 0x05, 0x58, 0x72, 1, 'x', 0x60})
	f.Fuzz(func(t *testing.T, data []byte) {
		var out bytes.Buffer
		terr := Transcode(bytes.NewReader(data), &out, WithMaxDepth(64))
		v := ir.New()
		derr := wire.Unmarshal(data, v, wire.WithMaxDepth(64))
		if (terr == nil) != (derr == nil) {
			t.Fatalf("transcode error %v, decode error %v", terr, derr)
		}
		if terr != nil {
			return
		}
		if want := encode.MustString(v); out.String() != want {
			t.Fatalf("transcode %q, decode+encode %q", out.String(), want)
		}
	})
}

