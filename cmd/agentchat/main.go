// Package main provides an interactive terminal chat client for the agent
// backend, standing in for the browser frontend.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/datar/agentchat/agentclient"
	"github.com/datar/agentchat/config"
	"github.com/datar/agentchat/domain"
)

func main() {
	host := flag.String("host", "", "host the client is served for; loopback hosts select the local backend")
	streaming := flag.Bool("stream", false, "start in streaming mode")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	transport := agentclient.New(cfg, *host, log)

	rl, err := readline.New("> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Println("Commands: /stream toggles streaming, /attach <path> queues a file, /quit exits.")

	var pending []string
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}
		line = strings.TrimSpace(line)

		switch {
		case line == "":
			continue
		case line == "/quit":
			return
		case line == "/stream":
			*streaming = !*streaming
			fmt.Printf("streaming: %v\n", *streaming)
			continue
		case strings.HasPrefix(line, "/attach "):
			path := strings.TrimSpace(strings.TrimPrefix(line, "/attach "))
			if _, err := os.Stat(path); err != nil {
				fmt.Printf("cannot attach %s: %v\n", path, err)
				continue
			}
			pending = append(pending, path)
			fmt.Printf("queued %s (%d pending)\n", path, len(pending))
			continue
		}

		attachments, closers, err := openAttachments(pending)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		pending = nil

		send(transport, line, attachments, *streaming)
		for _, c := range closers {
			c.Close()
		}
	}
}

func send(transport agentclient.Transport, text string, attachments []domain.Attachment, streaming bool) {
	ctx := context.Background()

	if streaming {
		var author string
		err := transport.SendStream(ctx, text, attachments, func(ev domain.AgentEvent) error {
			if a := domain.Author(ev); a != author {
				author = a
				fmt.Printf("\n[%s] ", author)
			}
			printContent(domain.ExtractContent(ev))
			return nil
		})
		fmt.Println()
		if err != nil {
			fmt.Printf("error: %v\n", err)
		}
		return
	}

	events, err := transport.SendOnce(ctx, text, attachments)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	for _, ev := range events {
		fmt.Printf("[%s] ", domain.Author(ev))
		printContent(domain.ExtractContent(ev))
		fmt.Println()
	}
}

func printContent(content domain.NormalizedContent) {
	fmt.Print(content.Text)
	for _, img := range content.Images {
		fmt.Printf("\n  image (%s): %s\n", img.MimeType, truncateURL(img.URL))
	}
	for _, aud := range content.Audio {
		fmt.Printf("\n  audio (%s): %s\n", aud.MimeType, truncateURL(aud.URL))
	}
}

func truncateURL(url string) string {
	if len(url) > 80 {
		return url[:80] + "..."
	}
	return url
}

func openAttachments(paths []string) ([]domain.Attachment, []io.Closer, error) {
	var attachments []domain.Attachment
	var closers []io.Closer
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			for _, c := range closers {
				c.Close()
			}
			return nil, nil, fmt.Errorf("opening %s: %w", path, err)
		}
		closers = append(closers, f)
		attachments = append(attachments, domain.Attachment{
			Name:     filepath.Base(path),
			MimeType: mime.TypeByExtension(filepath.Ext(path)),
			Reader:   f,
		})
	}
	return attachments, closers, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = zap.NewAtomicLevelAt(lvl)
	return loggerConfig.Build()
}
