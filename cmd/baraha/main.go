package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jpablo128/baraha/internal/client"
	"github.com/jpablo128/baraha/internal/config"
	"github.com/jpablo128/baraha/internal/server"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s host | play <addr> | bot <addr>\n", os.Args[0])
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	var err error
	switch os.Args[1] {
	case "host":
		log, logErr := zap.NewDevelopment()
		if logErr != nil {
			fmt.Fprintln(os.Stderr, logErr)
			os.Exit(1)
		}
		defer log.Sync()
		err = server.New(log).Host(config.Addr())
	case "play":
		if len(os.Args) != 3 {
			usage()
		}
		err = client.Play(os.Args[2])
	case "bot":
		if len(os.Args) != 3 {
			usage()
		}
		err = client.Bot(os.Args[2])
	default:
		usage()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
