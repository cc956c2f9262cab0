package wire

import (
	"testing"

	"github.com/protoson/go-pson/ir"
)

func FuzzDecode(f *testing.F) {
	seed, _ := Marshal(sampleDoc())
	f.Add(seed)
	f.Add([]byte{0x60})
	f.Add([]byte{0x22, 0x03, 0x01, 'a', 0x58})
	f.Add([]byte{0x2a, 0xff, 0xff, 0xff, 0xff, 0x07})
	f.Fuzz(func(t *testing.T, data []byte) {
		v := ir.New()
		if err := Unmarshal(data, v, WithMaxDepth(64)); err != nil {
			return
		}
		out, err := Marshal(v)
		if err != nil {
			t.Fatalf("re-encoding a decoded value: %v", err)
		}
		again := ir.New()
		if err := Unmarshal(out, again); err != nil {
			t.Fatalf("decoding re-encoded value: %v", err)
		}
	})
}
