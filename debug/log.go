package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/serde/encode"
	"github.com/signadot/serde/ir"
)

var out io.Writer = os.Stderr

// JSON formats a node as compact JSON text.
type JSON struct{ *ir.Node }

func (j JSON) String() string {
	if j.Node == nil {
		return "<nil>"
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(j.Node, buf, encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", *j.Node)
	}
	return string(bytes.TrimSpace(buf.Bytes()))
}

// Logf writes a diagnostic to stderr. *ir.Node arguments are rendered as
// JSON text.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			args[i] = JSON{x}.String()
		}
	}
	fmt.Fprintf(out, msg, args...)
}
