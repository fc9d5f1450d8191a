package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	qrcode "github.com/skip2/go-qrcode"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"escprint/pkg/bitmap"
	"escprint/pkg/device/escpos"
	"escprint/pkg/loader"
	"escprint/pkg/proto"
)

var addr = flag.String("addr", "", "printer address (host:port)")
var serial = flag.String("serial", "", "serial port name, overrides addr")
var baud = flag.Int("baud", 9600, "serial baud rate")
var width = flag.Int("width", escpos.DefaultMaxWidth, "print head width in dots")
var chunk = flag.Int("chunk", escpos.DefaultChunkHeight, "image buffer height in dots")
var overlap = flag.Int("overlap", 0, "rows re-printed between chunks")
var feed = flag.Uint8("feed", 3, "lines to feed after printing")
var cut = flag.Bool("cut", true, "cut after printing")
var qr = flag.String("qr", "", "print a qr code instead of a file")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	_ = godotenv.Load()
	flag.Parse()

	if *addr == "" {
		*addr = os.Getenv("ESCPRINT_ADDR")
	}

	logger, err := lo.Ternary(*debug, zap.NewDevelopment, zap.NewProduction)()
	if err != nil {
		log.Fatal(err)
	}

	var ch proto.Channel
	var chErr error

	if *serial != "" {
		ch, chErr = proto.OpenSerial(*serial, &proto.Options{DTR: true, RTS: true, BaudRate: *baud})
	} else {
		ch, chErr = proto.DialTCP(*addr)
	}

	if chErr != nil {
		log.Fatal(chErr)
	}

	dev, err := escpos.New(ch, logger,
		escpos.WithMaxWidth(*width),
		escpos.WithChunkHeight(*chunk),
		escpos.WithOverlap(*overlap),
	)
	if err != nil {
		log.Fatal(err)
	}

	var src *bitmap.Source

	if *qr != "" {
		code, err := qrcode.New(*qr, qrcode.Medium)
		if err != nil {
			log.Fatal(err)
		}
		src = bitmap.FromImage(code.Image(*width / 2))
	} else {
		if flag.NArg() < 1 {
			log.Fatal("usage: print [flags] <file-or-url>")
		}

		src, err = loader.New(logger, loader.WithMaxWidth(*width)).Load(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := dev.Print(src); err != nil {
		log.Fatal(err)
	}

	if *feed > 0 {
		if err := dev.Feed(*feed); err != nil {
			log.Fatal(err)
		}
	}

	if *cut {
		if err := dev.Cut(); err != nil {
			log.Fatal(err)
		}
	}

	if err := dev.Close(); err != nil {
		log.Fatal(err)
	}
}
