package rsrc

import "io"

// Operations
const (
	OpCat      = "cat"
	OpPut      = "put"
	OpSize     = "size"
	OpTruncate = "truncate"
)

// Request represents a resource fork operation
type Request struct {
	Op   string
	Path string

	// Size is the target length for OpTruncate, e.g. "0", "512" or "$200"
	Size string

	// Input supplies the new fork for OpPut
	Input io.Reader

	// Output receives the fork for OpCat
	Output io.Writer

	size int64
}

// Response represents the result of a resource fork operation
type Response struct {
	Path  string `json:"path" yaml:"path"`
	Op    string `json:"op" yaml:"op"`
	Size  int64  `json:"size" yaml:"size"`
	Bytes int64  `json:"bytes" yaml:"bytes"`
}
