package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/maxdz-gmbh/mdz-ansi-alg/ansi"
)

// attach builds an engine view over a fresh region holding data. The
// capacity comes from the global flag, enlarged to fit the data plus
// any spare the operation needs.
func attach(c *cli.Context, data string, spare int) (*ansi.Buffer, error) {
	capacity := c.Int("capacity")
	if capacity < len(data)+spare {
		capacity = len(data) + spare
	}
	if capacity == 0 {
		capacity = 1
	}

	mem := make([]byte, capacity+1)
	copy(mem, data)

	b, err := ansi.Attach(mem, len(data))
	if err != nil {
		return nil, fmt.Errorf("attach %d-byte buffer: %w", capacity, err)
	}
	log.Debug().Int("size", b.Size()).Int("capacity", b.Capacity()).Msg("buffer attached")
	return b, nil
}

// window resolves the --left/--right flags against the buffer; an unset
// right bound means the last content byte.
func window(c *cli.Context, b *ansi.Buffer) (int, int) {
	left := c.Int("left")
	right := b.Size() - 1
	if c.IsSet("right") {
		right = c.Int("right")
	}
	return left, right
}

func windowFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "left", Usage: "window start position"},
		&cli.IntFlag{Name: "right", Usage: "window end position (default: size-1)"},
	}
}

func twoArgs(c *cli.Context, usage string) (string, string, error) {
	if c.NArg() != 2 {
		return "", "", fmt.Errorf("expected arguments: %s", usage)
	}
	return c.Args().Get(0), c.Args().Get(1), nil
}

var findCommand = &cli.Command{
	Name:      "find",
	Usage:     "find a pattern and print its position",
	ArgsUsage: "DATA PATTERN",
	Flags: append(windowFlags(),
		&cli.BoolFlag{Name: "last", Usage: "search backward for the last occurrence"},
	),
	Action: func(c *cli.Context) error {
		data, pattern, err := twoArgs(c, "DATA PATTERN")
		if err != nil {
			return err
		}
		b, err := attach(c, data, 0)
		if err != nil {
			return err
		}

		left, right := window(c, b)
		var pos int
		if c.Bool("last") {
			pos, err = b.RFind(left, right, []byte(pattern))
		} else {
			pos, err = b.Find(left, right, []byte(pattern))
		}
		if err != nil {
			return fmt.Errorf("find %q: %w", pattern, err)
		}

		if pos == ansi.NotFound {
			fmt.Println("not found")
			return nil
		}
		fmt.Println(pos)
		return nil
	},
}

var countCommand = &cli.Command{
	Name:      "count",
	Usage:     "count pattern occurrences",
	ArgsUsage: "DATA PATTERN",
	Flags: append(windowFlags(),
		&cli.BoolFlag{Name: "overlap", Usage: "count overlapping occurrences"},
	),
	Action: func(c *cli.Context) error {
		data, pattern, err := twoArgs(c, "DATA PATTERN")
		if err != nil {
			return err
		}
		b, err := attach(c, data, 0)
		if err != nil {
			return err
		}

		left, right := window(c, b)
		n, err := b.Count(left, right, []byte(pattern), c.Bool("overlap"))
		if err != nil {
			return fmt.Errorf("count %q: %w", pattern, err)
		}
		fmt.Println(n)
		return nil
	},
}

var trimCommand = &cli.Command{
	Name:      "trim",
	Usage:     "trim set-member bytes from the edges",
	ArgsUsage: "DATA SET",
	Flags: append(windowFlags(),
		&cli.BoolFlag{Name: "left-only", Usage: "trim the left edge only"},
		&cli.BoolFlag{Name: "right-only", Usage: "trim the right edge only"},
	),
	Action: func(c *cli.Context) error {
		data, set, err := twoArgs(c, "DATA SET")
		if err != nil {
			return err
		}
		b, err := attach(c, data, 0)
		if err != nil {
			return err
		}

		left, right := window(c, b)
		switch {
		case c.Bool("left-only"):
			err = b.TrimLeft(left, right, []byte(set))
		case c.Bool("right-only"):
			err = b.TrimRight(left, right, []byte(set))
		default:
			err = b.Trim(left, right, []byte(set))
		}
		if err != nil {
			return fmt.Errorf("trim: %w", err)
		}
		fmt.Println(b.String())
		return nil
	},
}

var removeCommand = &cli.Command{
	Name:      "remove",
	Usage:     "remove every occurrence of a pattern",
	ArgsUsage: "DATA PATTERN",
	Flags:     windowFlags(),
	Action: func(c *cli.Context) error {
		data, pattern, err := twoArgs(c, "DATA PATTERN")
		if err != nil {
			return err
		}
		b, err := attach(c, data, 0)
		if err != nil {
			return err
		}

		left, right := window(c, b)
		if err := b.Remove(left, right, []byte(pattern)); err != nil {
			return fmt.Errorf("remove %q: %w", pattern, err)
		}
		fmt.Println(b.String())
		return nil
	},
}

var insertCommand = &cli.Command{
	Name:      "insert",
	Usage:     "insert items at a position",
	ArgsUsage: "DATA ITEMS",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "at", Usage: "insertion position (default: append)", Value: -1},
	},
	Action: func(c *cli.Context) error {
		data, items, err := twoArgs(c, "DATA ITEMS")
		if err != nil {
			return err
		}

		// Reserve room for the insertion on top of the data.
		b, err := attach(c, data, len(items))
		if err != nil {
			return err
		}

		at := c.Int("at")
		if at < 0 {
			at = b.Size()
		}
		if err := b.Insert(at, []byte(items)); err != nil {
			return fmt.Errorf("insert at %d: %w", at, err)
		}
		fmt.Println(b.String())
		return nil
	},
}

var compareCommand = &cli.Command{
	Name:      "compare",
	Usage:     "compare buffer content against items",
	ArgsUsage: "DATA ITEMS",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "at", Usage: "buffer position to compare from"},
		&cli.BoolFlag{Name: "partial", Usage: "compare only len(ITEMS) bytes"},
	},
	Action: func(c *cli.Context) error {
		data, items, err := twoArgs(c, "DATA ITEMS")
		if err != nil {
			return err
		}
		b, err := attach(c, data, 0)
		if err != nil {
			return err
		}

		equal, err := b.Compare(c.Int("at"), []byte(items), c.Bool("partial"))
		if err != nil {
			return fmt.Errorf("compare: %w", err)
		}
		if equal {
			fmt.Println("equal")
		} else {
			fmt.Println("non-equal")
		}
		return nil
	},
}
