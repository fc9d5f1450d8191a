package bot

import (
	"fmt"
	"strconv"
	"time"

	"github.com/inhies/go-bytesize"
	qrcode "github.com/skip2/go-qrcode"
	tele "gopkg.in/telebot.v3"

	"escprint/pkg/bitmap"
	"escprint/pkg/loader"
	"escprint/pkg/proto"
)

func New(token string, dev proto.Control, ld *loader.Loader, opts ...Option) (*Bot, error) {
	pref := tele.Settings{
		Token: token,
		Poller: &tele.LongPoller{
			Timeout: 30 * time.Second,
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		b:      b,
		dev:    dev,
		ld:     ld,
		qrDots: 384,
	}

	for _, opt := range opts {
		opt(bot)
	}

	return bot, nil
}

type Bot struct {
	b      *tele.Bot
	dev    proto.Control
	ld     *loader.Loader
	qrDots int
}

func (b *Bot) handlePrint() {
	print := func(context tele.Context, file *tele.File) error {
		rc, err := b.b.File(file)
		if err != nil {
			return context.Reply(fmt.Sprintf("fetch failed: %s", err))
		}

		defer func() {
			_ = rc.Close()
		}()

		src, err := b.ld.Decode(rc)
		if err != nil {
			return context.Reply(fmt.Sprintf("decode failed: %s", err))
		}

		if err := b.dev.Print(src); err != nil {
			return context.Reply(fmt.Sprintf("print failed: %s", err))
		}

		size := bytesize.New(float64(src.Width() * src.Height() * int(src.Layout())))
		return context.Reply(fmt.Sprintf("Printed %dx%d (%s)", src.Width(), src.Height(), size))
	}

	b.b.Handle(tele.OnPhoto, func(context tele.Context) error {
		return print(context, &context.Message().Photo.File)
	})

	b.b.Handle(tele.OnDocument, func(context tele.Context) error {
		return print(context, &context.Message().Document.File)
	})
}

func (b *Bot) handlePaper() {
	b.b.Handle("/feed", func(context tele.Context) error {
		lines := uint64(3)
		if in := context.Message().Payload; in != "" {
			parsed, err := strconv.ParseUint(in, 10, 8)
			if err != nil {
				return context.Reply(fmt.Sprintf("feed failed: %s", err))
			}
			lines = parsed
		}

		if err := b.dev.Feed(uint8(lines)); err != nil {
			return context.Reply(fmt.Sprintf("feed failed: %s", err))
		}

		return context.Reply("OK")
	})

	b.b.Handle("/cut", func(context tele.Context) error {
		if err := b.dev.Cut(); err != nil {
			return context.Reply(fmt.Sprintf("cut failed: %s", err))
		}

		return context.Reply("OK")
	})

	b.b.Handle("/qr", func(context tele.Context) error {
		in := context.Message().Payload
		if in == "" {
			return context.Reply("usage: /qr <text>")
		}

		code, err := qrcode.New(in, qrcode.Medium)
		if err != nil {
			return context.Reply(fmt.Sprintf("encode failed: %s", err))
		}

		if err := b.dev.Print(bitmap.FromImage(code.Image(b.qrDots))); err != nil {
			return context.Reply(fmt.Sprintf("print failed: %s", err))
		}

		return context.Reply("OK")
	})
}

func (b *Bot) Start() {
	b.handlePrint()
	b.handlePaper()
	go b.b.Start()
}

func (b *Bot) Stop() {
	// telebot stop blocks until the poller sees another update
	go b.b.Stop()
}
