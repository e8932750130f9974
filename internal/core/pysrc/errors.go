package pysrc

import "errors"

var ErrFileNotFound = errors.New("source file not found")
var ErrParse = errors.New("source could not be parsed")
