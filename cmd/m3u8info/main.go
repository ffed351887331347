package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	hls "github.com/turtletowerz/hlsparse"
	"github.com/turtletowerz/hlsparse/internal/config"
	"github.com/turtletowerz/hlsparse/internal/logger"
	"github.com/turtletowerz/hlsparse/m3u8"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	if err := run(os.Args[1:], os.Stdin, os.Stdout, cfg, log); err != nil {
		log.WithError(err).Fatal("m3u8info failed")
	}
}

// run parses the playlist named by args[0], or stdin when args is empty,
// and writes it to out as JSON.
func run(args []string, stdin io.Reader, out io.Writer, cfg *config.Config, log logrus.FieldLogger) error {
	in, name := stdin, "stdin"
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening playlist: %w", err)
		}
		defer f.Close()
		in, name = f, args[0]
	}

	playlist, err := m3u8.DecodeReader(in, m3u8.WithLogger(log.WithField("source", name)))
	if err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}

	summary := hls.Summarize(playlist)
	log.WithFields(logrus.Fields{
		"source": name,
		"kind":   summary.Kind,
		"count":  playlist.Count(),
	}).Debug("decoded playlist")

	var v interface{} = playlist
	if cfg.Output.Summary {
		v = summary
	}

	enc := json.NewEncoder(out)
	if cfg.Output.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
