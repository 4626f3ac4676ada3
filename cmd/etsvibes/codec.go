package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/etsvibes/internal/writer"
	"github.com/joshuapare/etsvibes/pkg/save"
	"github.com/joshuapare/etsvibes/pkg/sii"
)

var (
	codecOutput  string
	codecInPlace bool
)

// codecResult is the JSON shape of decode and encode.
type codecResult struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Variant string `json:"variant"`
	Bytes   int    `json:"bytes"`
}

func init() {
	rootCmd.AddCommand(newDecodeCmd(), newEncodeCmd())
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a save file to plain text",
		Long: `The decode command reads a .sii file (encrypted or plain text) and writes its
text. Output goes to stdout unless -o is given; --in-place rewrites the file
itself after backing it up.

Example:
  etsvibes decode game.sii > game.txt
  etsvibes decode game.sii -o game.txt
  etsvibes decode game.sii --in-place`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args)
		},
	}
	cmd.Flags().StringVarP(&codecOutput, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVarP(&codecInPlace, "in-place", "i", false, "Rewrite the input file (backed up first)")
	return cmd
}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <file>",
		Short: "Encrypt a plain text save",
		Long: `The encode command wraps a plain text .sii document into an encrypted ScsC
container. Output goes to stdout unless -o is given; --in-place rewrites the
file itself after backing it up.

Example:
  etsvibes encode game.txt -o game.sii
  etsvibes encode game.sii --in-place`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args)
		},
	}
	cmd.Flags().StringVarP(&codecOutput, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVarP(&codecInPlace, "in-place", "i", false, "Rewrite the input file (backed up first)")
	return cmd
}

func runDecode(args []string) error {
	in := args[0]
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", in, err)
	}
	text, variant, err := sii.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", in, err)
	}
	printVerbose("Decoded %s (%s, %d bytes)\n", in, variant, len(text))
	return emit(in, []byte(text), variant)
}

func runEncode(args []string) error {
	in := args[0]
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", in, err)
	}
	text, variant, err := sii.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", in, err)
	}
	if variant == sii.VariantEncrypted {
		return errors.New(in + " is already encrypted")
	}
	out, err := sii.Encode(text)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", in, err)
	}
	printVerbose("Encoded %s (%d -> %d bytes)\n", in, len(data), len(out))
	return emit(in, out, sii.VariantEncrypted)
}

// emit writes a codec result to the input file (--in-place), the -o file or
// stdout.
func emit(in string, data []byte, variant sii.Variant) error {
	res := codecResult{Input: in, Variant: variant.String(), Bytes: len(data)}

	switch {
	case codecInPlace:
		if codecOutput != "" {
			return errors.New("--in-place and --output are mutually exclusive")
		}
		sink := save.NewFileSink(in)
		if err := sink.Write(data); err != nil {
			return fmt.Errorf("failed to write %s: %w", in, err)
		}
		res.Output = in
		printVerbose("Backup: %s\n", sink.BackupPath())
	case codecOutput != "":
		w := &writer.FileWriter{Path: codecOutput}
		if err := w.WriteSave(data); err != nil {
			return fmt.Errorf("failed to write %s: %w", codecOutput, err)
		}
		res.Output = codecOutput
	default:
		if jsonOut {
			return errors.New("--json needs --output or --in-place")
		}
		_, err := os.Stdout.Write(data)
		return err
	}

	if jsonOut {
		return printJSON(res)
	}
	printInfo("%s wrote %s\n", successStyle.Render("✓"), res.Output)
	return nil
}
