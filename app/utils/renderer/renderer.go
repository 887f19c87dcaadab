package renderer

import (
	"io"

	"github.com/unrolled/render"
)

var r = render.New(render.Options{
	IndentJSON: true,
})

// JSON writes the value as indented JSON, used by the CLI's --json output
// mode.
func JSON(w io.Writer, v any) error {
	return r.JSON(w, 0, v)
}
