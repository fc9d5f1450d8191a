package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"escprint/internal/joblog"
	"escprint/pkg/device/escpos"
	"escprint/pkg/device/remote"
	"escprint/pkg/device/virtual"
	"escprint/pkg/proto"
)

var addr = flag.String("addr", "", "printer address (host:port)")
var listen = flag.String("listen", ":9123", "listen addr")
var width = flag.Int("width", escpos.DefaultMaxWidth, "print head width in dots")
var journal = flag.String("journal", "", "job journal path, empty disables it")
var dry = flag.Bool("dry", false, "log jobs instead of driving a printer")

func main() {
	_ = godotenv.Load()
	flag.Parse()

	if *addr == "" {
		*addr = os.Getenv("ESCPRINT_ADDR")
	}

	fx.New(
		fx.Provide(
			zap.NewProduction,
			func() *http.Server {
				return &http.Server{Addr: *listen}
			},
			func() (*joblog.Journal, error) {
				if *journal == "" {
					return nil, nil
				}
				return joblog.Open(*journal)
			},
			func(logger *zap.Logger) (proto.Control, error) {
				if *dry {
					return virtual.Mock(logger), nil
				}

				ch, err := proto.DialTCP(*addr)
				if err != nil {
					return nil, err
				}
				return escpos.New(ch, logger, escpos.WithMaxWidth(*width))
			},
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}
