package templates

import (
	"embed"
	"io/fs"
)

//go:embed builtin/*
var builtinFS embed.FS

// Builtin returns the templates compiled into the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// fs.Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}
