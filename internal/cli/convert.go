package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nconklindev/rowify/internal/converter"
	"github.com/nconklindev/rowify/internal/download"
	"github.com/nconklindev/rowify/internal/form"
	"github.com/nconklindev/rowify/internal/logging"
	"github.com/nconklindev/rowify/internal/types"
	"github.com/nconklindev/rowify/internal/ui"

	"github.com/spf13/cobra"
)

var ErrInvalidInput = errors.New("invalid input")

func newConvertCommand(a *app) *cobra.Command {
	var fileName, header string

	cmd := &cobra.Command{
		Use:   "convert [string...]",
		Short: "Convert a string to an Excel file without the form",
		Long: `Convert joins its arguments with spaces and writes the tokens to
<output-dir>/<file-name>.xlsx. Pass "-" to read the string from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			if len(args) == 1 && args[0] == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				input = string(data)
			}

			return a.runConvert(cmd, types.FormInput{
				InputString: input,
				FileName:    fileName,
				Header:      header,
			})
		},
	}

	cmd.Flags().StringVarP(&fileName, "file-name", "f", "", "Output file name without extension")
	cmd.Flags().StringVarP(&header, "header", "H", "", "Header of the output column")

	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, in types.FormInput) error {
	cfg, err := a.load()
	if err != nil {
		return err
	}

	logger, err := logging.Setup(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	svc := converter.NewService(converter.XLSXSerializer{}, converter.WithLogger(logger))
	st, result, err := svc.Submit(cmd.Context(), form.State{Input: in}, download.DirDownloader{Dir: cfg.OutputDir})
	if err != nil {
		return err
	}

	if result == nil {
		for _, field := range form.Fields {
			if msg := st.Error(field); msg != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorStyle.Render(msg))
			}
		}
		return ErrInvalidInput
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessStyle.Render(
		fmt.Sprintf("✓ Saved %s (%d rows)", result.Destination, result.Tokens),
	))
	return nil
}
