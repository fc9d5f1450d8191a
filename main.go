package main

import (
	"os"

	"go.uber.org/zap"

	"escprint/pkg/device/escpos"
	"escprint/pkg/loader"
	"escprint/pkg/proto"
)

func main() {
	if len(os.Args) < 3 {
		panic("usage: escprint <host:port> <image>")
	}

	ch, err := proto.DialTCP(os.Args[1])
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	dev, err := escpos.New(ch, logger)
	if err != nil {
		panic(err)
	}

	src, err := loader.New(logger).Load(os.Args[2])
	if err != nil {
		panic(err)
	}

	if err := dev.Print(src); err != nil {
		panic(err)
	}

	if err := dev.Feed(3); err != nil {
		panic(err)
	}

	if err := dev.Cut(); err != nil {
		panic(err)
	}

	if err := dev.Close(); err != nil {
		panic(err)
	}
}
