package internal

import "github.com/ananthvk/streamresp"

type CommandFunc func(args []streamresp.Value) streamresp.Value

var Commands = map[string]CommandFunc{
	"ECHO":  handleEcho,
	"PING":  handlePing,
	"PARSE": handleParse,
}
