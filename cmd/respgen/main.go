// Command respgen generates a corpus of RESP3 capture files for respreplay
// and for load testing RESP3 consumers. Each file holds a stream of random
// values serialized back to back.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/ananthvk/streamresp"
	"github.com/ananthvk/streamresp/internal/capture"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

func main() {
	outPtr := flag.String("out", "corpus", "output directory for capture files")
	filesPtr := flag.Int("files", 4, "number of capture files to generate")
	valuesPtr := flag.Int("n", 1000, "number of values per file")
	seedPtr := flag.Int64("seed", 1, "random seed")
	depthPtr := flag.Int("depth", 4, "maximum nesting depth of generated values")
	widthPtr := flag.Int("width", 8, "maximum aggregate width of generated values")
	flag.Parse()

	fs := afero.NewOsFs()
	rng := rand.New(rand.NewSource(*seedPtr))

	for i := 0; i < *filesPtr; i++ {
		var stream []byte
		for j := 0; j < *valuesPtr; j++ {
			value := randomValue(rng, *depthPtr, *widthPtr)
			wire, err := value.Bytes()
			if err != nil {
				fmt.Fprintf(os.Stderr, "(error) SERIALIZE: %s\n", err)
				os.Exit(1)
			}
			stream = append(stream, wire...)
		}
		name := uuid.NewString()
		path, err := capture.WriteStream(fs, *outPtr, name, stream)
		if err != nil {
			fmt.Fprintf(os.Stderr, "(error) WRITE: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d values, %d bytes\n", path, *valuesPtr, len(stream))
	}
}

const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomText(rng *rand.Rand, maxLen int) []byte {
	b := make([]byte, rng.Intn(maxLen+1))
	for i := range b {
		b[i] = chars[rng.Intn(len(chars))]
	}
	return b
}

func randomBinary(rng *rand.Rand, maxLen int) []byte {
	b := make([]byte, rng.Intn(maxLen+1))
	rng.Read(b)
	return b
}

// randomValue draws one value. Aggregates have the same odds at every
// positive depth; at depth zero only scalars are produced. NaN is excluded so generated
// corpora verify with Equal.
func randomValue(rng *rand.Rand, depth, width int) streamresp.Value {
	kind := rng.Intn(14)
	if depth <= 0 && kind >= 10 {
		kind = rng.Intn(10)
	}
	switch kind {
	case 0:
		return streamresp.SimpleString(string(randomText(rng, 24)))
	case 1:
		return streamresp.SimpleError("ERR " + string(randomText(rng, 16)))
	case 2:
		return streamresp.Int(rng.Int63() - rng.Int63())
	case 3:
		if rng.Intn(8) == 0 {
			return streamresp.NullBulkString()
		}
		return streamresp.BulkString(randomBinary(rng, 64))
	case 4:
		return streamresp.Null()
	case 5:
		return streamresp.Bool(rng.Intn(2) == 1)
	case 6:
		return streamresp.Double(rng.NormFloat64() * 1e6)
	case 7:
		digits := fmt.Sprintf("%d%010d", rng.Int63(), rng.Int63n(1e9))
		if rng.Intn(2) == 0 {
			digits = "-" + digits
		}
		return streamresp.BigNumber(digits)
	case 8:
		if rng.Intn(8) == 0 {
			return streamresp.NullBulkError()
		}
		return streamresp.BulkError(randomText(rng, 32))
	case 9:
		return streamresp.VerbatimString("txt", randomText(rng, 32))
	case 10:
		if rng.Intn(16) == 0 {
			return streamresp.NullArray()
		}
		return streamresp.Array(randomValues(rng, depth-1, width)...)
	case 11:
		count := rng.Intn(width + 1)
		pairs := make([]streamresp.Pair, count)
		for i := range pairs {
			pairs[i] = streamresp.Pair{
				Key:   streamresp.BulkString(randomText(rng, 16)),
				Value: randomValue(rng, depth-1, width),
			}
		}
		return streamresp.Map(pairs...)
	case 12:
		return streamresp.Set(randomValues(rng, depth-1, width)...)
	default:
		return streamresp.Push(randomValues(rng, depth-1, width)...)
	}
}

func randomValues(rng *rand.Rand, depth, width int) []streamresp.Value {
	elems := make([]streamresp.Value, rng.Intn(width+1))
	for i := range elems {
		elems[i] = randomValue(rng, depth, width)
	}
	return elems
}
