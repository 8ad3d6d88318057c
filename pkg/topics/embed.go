package topics

import (
	"embed"
	"io/fs"
)

//go:embed content/*.md
var content embed.FS

// Builtin returns the help topics shipped with matrixlab.
func Builtin() fs.FS {
	sub, err := fs.Sub(content, "content")
	if err != nil {
		// content/ always exists in the embedded tree.
		panic(err)
	}
	return sub
}
