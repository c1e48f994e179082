package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"

	"github.com/ananthvk/streamresp/cmd/respserver/internal"
)

func main() {
	portPtr := flag.Uint("port", 6379, "specify the port on which to listen")
	hostPtr := flag.String("host", "0.0.0.0", "specify the bind address")
	depthPtr := flag.Int("max-depth", 32, "maximum aggregate nesting depth per request")
	elementsPtr := flag.Int("max-elements", 65536, "maximum element count per request")
	flag.Parse()
	address := fmt.Sprintf("%s:%d", *hostPtr, *portPtr)

	ctx := context.Background()
	listenerConfig := net.ListenConfig{}
	listener, err := listenerConfig.Listen(ctx, "tcp", address)
	if err != nil {
		slog.Error("listen failed", "error", err)
		return
	}
	defer listener.Close()

	server := internal.NewServer(*depthPtr, *elementsPtr)
	slog.Info("server listening", "address", listener.Addr().String())
	for {
		conn, err := listener.Accept()
		if err != nil {
			slog.Warn("accept failed", "error", err)
			continue
		}
		go server.Handle(conn)
	}
}
