package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"resume-builder/internal/form"
	"resume-builder/internal/model"
)

func main() {
	server := flag.String("server", "http://localhost:3001", "base URL of the resume server")
	out := flag.String("out", "preview.pdf", "file the newest preview is written to")
	quiet := flag.Duration("quiet", form.DefaultQuietPeriod, "pause after the last edit before regenerating")
	demo := flag.Bool("demo", false, "start from the demo record instead of an empty form")
	flag.Parse()

	initial := model.Empty()
	if *demo {
		initial = model.Demo()
	}

	session := form.NewSession(form.NewHolder(initial), form.NewClient(*server, nil), form.SessionOptions{
		Quiet: *quiet,
		OnPreview: func(p form.Preview) {
			if err := os.WriteFile(*out, p.PDF, 0o644); err != nil {
				log.Printf("write preview: %v", err)
				return
			}
			log.Printf("preview #%d written to %s (%d bytes)", p.Seq, *out, len(p.PDF))
		},
		OnError: func(err error) { log.Printf("preview failed: %v", err) },
	})
	defer session.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if _, err := session.Refresh(ctx); err != nil {
		log.Printf("initial preview failed: %v", err)
	}
	cancel()

	fmt.Println(helpText)
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			break
		}
		quit, err := execute(in.Text(), session.Holder(), os.Stdout)
		if err != nil {
			fmt.Println("error:", err)
		}
		if quit {
			break
		}
	}
	if err := in.Err(); err != nil {
		log.Printf("read input: %v", err)
	}
}
