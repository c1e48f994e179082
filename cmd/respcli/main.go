// Command respcli is a small REPL for poking the parser: type RESP3 wire
// text with \r\n written as the two-character escape and see the decoded
// value, or an error, immediately. Multi-line values may be entered across
// several prompts; the parser resumes where the previous line stopped.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ananthvk/streamresp"
)

func main() {
	parser := streamresp.New(0, 0)

	fmt.Println("Welcome to respcli, type \"exit\" to quit")
	fmt.Println("Enter RESP3 wire text with \\r\\n for the terminator, e.g. *2\\r\\n:1\\r\\n:2\\r\\n")
	fmt.Println("A bare line is sent as-is with \\r\\n appended")
	fmt.Print("> ")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		query := scanner.Text()
		if query == "exit" {
			break
		}
		if query != "" {
			wire := strings.ReplaceAll(query, "\\r\\n", "\r\n")
			if !strings.Contains(query, "\\r\\n") {
				wire += "\r\n"
			}
			parser.Feed([]byte(wire))
			drain(parser)
		}
		fmt.Print("> ")
	}
}

func drain(parser *streamresp.Parser) {
	for {
		value, consumed, err := parser.TryParse()
		if err != nil {
			if streamresp.IsIncomplete(err) {
				if parser.Pending() || parser.Buffered() > 0 {
					fmt.Println("(waiting for more input)")
				}
				return
			}
			fmt.Printf("(error) %s\n", err)
			parser.Reset()
			return
		}
		fmt.Printf("(%d bytes) %s\n", consumed, formatValue(value, 0))
	}
}

func formatValue(value streamresp.Value, indent int) string {
	pad := strings.Repeat("  ", indent)
	switch value.Type {
	case streamresp.TypeSimpleString:
		return string(value.Buffer)
	case streamresp.TypeSimpleError:
		return fmt.Sprintf("(error) %s", value.Buffer)
	case streamresp.TypeInteger:
		return fmt.Sprintf("(integer) %d", value.Integer)
	case streamresp.TypeBulkString:
		if value.Null {
			return "(nil)"
		}
		return fmt.Sprintf("%q", value.Buffer)
	case streamresp.TypeNull:
		return "(nil)"
	case streamresp.TypeBoolean:
		return fmt.Sprintf("(boolean) %t", value.Boolean)
	case streamresp.TypeDouble:
		return fmt.Sprintf("(double) %g", value.Double)
	case streamresp.TypeBigNumber:
		return fmt.Sprintf("(big number) %s", value.Buffer)
	case streamresp.TypeBulkError:
		if value.Null {
			return "(nil)"
		}
		return fmt.Sprintf("(bulk error) %s", value.Buffer)
	case streamresp.TypeVerbatimString:
		return fmt.Sprintf("(verbatim %s) %s", value.Verbatim[:], value.Buffer)
	case streamresp.TypeArray, streamresp.TypeSet, streamresp.TypePush:
		if value.Null {
			return "(nil)"
		}
		if len(value.Elems) == 0 {
			return fmt.Sprintf("(empty %s)", value.Type)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "(%s)", value.Type)
		for i, elem := range value.Elems {
			fmt.Fprintf(&b, "\n%s%d) %s", pad+"  ", i+1, formatValue(elem, indent+1))
		}
		return b.String()
	case streamresp.TypeMap:
		if len(value.Pairs) == 0 {
			return "(empty map)"
		}
		var b strings.Builder
		b.WriteString("(map)")
		for i, pair := range value.Pairs {
			fmt.Fprintf(&b, "\n%s%d# %s => %s", pad+"  ", i+1,
				formatValue(pair.Key, indent+1), formatValue(pair.Value, indent+1))
		}
		return b.String()
	}
	return "(unknown)"
}
