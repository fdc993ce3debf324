package cmd

import "github.com/ardnew/debugme/pkg"

var (
	ErrYAMLMarshal = pkg.NewError("marshal YAML")
	ErrWriteConfig = pkg.NewError("write configuration file")
	ErrFileExists  = pkg.NewError("file exists (use --force to overwrite)")
	ErrReadSource  = pkg.NewError("read bindings")
	ErrReport      = pkg.NewError("report")
)
