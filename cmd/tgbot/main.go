package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"escprint/pkg/bot"
	"escprint/pkg/device/escpos"
	"escprint/pkg/device/remote"
	"escprint/pkg/loader"
	"escprint/pkg/proto"
)

var addr = flag.String("addr", "", "printer address, host:port or rpc://host:port")
var width = flag.Int("width", escpos.DefaultMaxWidth, "print head width in dots")
var tgToken = flag.String("tg-token", "", "telegram bot token")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	_ = godotenv.Load()
	flag.Parse()

	if *addr == "" {
		*addr = os.Getenv("ESCPRINT_ADDR")
	}
	if *tgToken == "" {
		*tgToken = os.Getenv("ESCPRINT_TG_TOKEN")
	}

	logger, err := lo.Ternary(*debug, zap.NewDevelopment, zap.NewProduction)()
	if err != nil {
		log.Fatal(err)
	}

	var dev proto.Control
	var devErr error

	if strings.HasPrefix(*addr, "rpc://") {
		dev, devErr = remote.New(strings.TrimPrefix(*addr, "rpc://"))
	} else {
		var ch proto.Channel
		ch, devErr = proto.DialTCP(*addr)
		if devErr == nil {
			dev, devErr = escpos.New(ch, logger, escpos.WithMaxWidth(*width))
		}
	}

	if devErr != nil {
		log.Fatal(devErr)
	}

	ld := loader.New(logger, loader.WithMaxWidth(*width))

	b, err := bot.New(*tgToken, dev, ld, bot.WithQRSize(*width/2))
	if err != nil {
		log.Fatal(err)
	}
	b.Start()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	<-signals
	logger.Info("shutting down")
	b.Stop()
	if err := dev.Close(); err != nil {
		logger.With(zap.Error(err)).Info("close failed")
	}
	logger.Info("exited")
}
