package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tdewolff/argp"

	"github.com/fontobene/strokeconv/fontobene"
	"github.com/fontobene/strokeconv/hershey"
	"github.com/fontobene/strokeconv/lff"
)

type Hershey struct {
	Output  string `short:"o" desc:"Output file (default stdout)"`
	Workers int    `short:"j" default:"1" desc:"Concurrent glyph conversions"`
	Name    string `desc:"Font name override"`
	ID      string `desc:"Font id override"`
	Version string `desc:"Font version override"`
	Input   string `index:"0" desc:"NewStroke font table source (C array)"`
}

type LFF struct {
	Output string `short:"o" desc:"Output file (default stdout)"`
	Input  string `index:"0" desc:"LFF font file"`
}

func main() {
	root := argp.NewCmd(&Hershey{}, "StrokeFont and LFF to FontoBene font converters")
	root.AddCmd(&LFF{}, "lff", "Convert a LibreCAD LFF font")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Hershey) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	f, err := os.Open(cmd.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	buffers, err := hershey.ParseTable(f)
	if err != nil {
		return err
	}
	glyphs := make(map[rune]string, len(buffers))
	for i, buffer := range buffers {
		glyphs[hershey.Codepoint(i)] = buffer
	}

	w, closer, err := output(cmd.Output)
	if err != nil {
		return err
	}
	defer closer()

	opts := fontobene.DefaultOptions
	opts.Workers = cmd.Workers
	if cmd.Name != "" {
		opts.Name = cmd.Name
	}
	if cmd.ID != "" {
		opts.ID = cmd.ID
	}
	if cmd.Version != "" {
		opts.Version = cmd.Version
	}
	if err := fontobene.Convert(glyphs, w, &opts); err != nil {
		// skipped glyphs degrade the font but don't fail the conversion
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return nil
}

func (cmd *LFF) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	f, err := os.Open(cmd.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	w, closer, err := output(cmd.Output)
	if err != nil {
		return err
	}
	defer closer()

	return lff.Convert(f, w)
}

func output(filename string) (io.Writer, func() error, error) {
	if filename == "" || filename == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
